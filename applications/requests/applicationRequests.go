package requests

// IndividualData is the nested person payload carried by application
// create and update requests. Image fields are base64 data URIs.
type IndividualData struct {
	ChineseLastName   string  `json:"chinese_last_name" validate:"required"`
	ChineseFirstName  string  `json:"chinese_first_name" validate:"required"`
	EnglishLastName   *string `json:"english_last_name"`
	EnglishFirstName  *string `json:"english_first_name"`
	NationalID        *string `json:"national_id"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=male female"`
	PassportInfoImage *string `json:"passport_info_image"`
	IDCardFrontImage  *string `json:"id_card_front_image"`
	IDCardBackImage   *string `json:"id_card_back_image"`
}

type CreateApplicationRequest struct {
	ApplicationType string          `json:"application_type" validate:"required,oneof=first_time renewal lost_document"`
	Urgency         string          `json:"urgency" validate:"required,oneof=urgent normal"`
	ApplicationDate *string         `json:"application_date"`
	CustomerName    string          `json:"customer_name"`
	Status          *string         `json:"status" validate:"omitempty,oneof=draft pending_review needs_resubmission submitted completed"`
	Reason          *string         `json:"reason"`
	IndividualData  *IndividualData `json:"individual_data" validate:"required"`
}

// UpdateApplicationRequest is a partial patch: nil fields are untouched.
// Nested individual data requires no name fields here since the update
// targets the already-linked individual.
type UpdateApplicationRequest struct {
	ApplicationType *string `json:"application_type" validate:"omitempty,oneof=first_time renewal lost_document"`
	Urgency         *string `json:"urgency" validate:"omitempty,oneof=urgent normal"`
	ApplicationDate *string `json:"application_date"`
	CustomerName    *string `json:"customer_name"`
	Status          *string `json:"status" validate:"omitempty,oneof=draft pending_review needs_resubmission submitted completed"`
	Substatus       *string `json:"substatus" validate:"omitempty,oneof=failed success additional_fee_required"`
	Reason          *string `json:"reason"`

	IndividualData *UpdateIndividualData `json:"individual_data"`
}

type UpdateIndividualData struct {
	ChineseLastName   *string `json:"chinese_last_name"`
	ChineseFirstName  *string `json:"chinese_first_name"`
	EnglishLastName   *string `json:"english_last_name"`
	EnglishFirstName  *string `json:"english_first_name"`
	NationalID        *string `json:"national_id"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=male female"`
	PassportInfoImage *string `json:"passport_info_image"`
	IDCardFrontImage  *string `json:"id_card_front_image"`
	IDCardBackImage   *string `json:"id_card_back_image"`
}

type UpdateStatusRequest struct {
	Status    string  `json:"status" validate:"required,oneof=draft pending_review needs_resubmission submitted completed"`
	Substatus *string `json:"substatus" validate:"omitempty,oneof=failed success additional_fee_required"`
	Reason    *string `json:"reason"`
}

type ResubmitRequest struct {
	Note string `json:"note"`
}
