package controllers

import (
	"context"
	"time"

	"github.com/YiChiaPeng/ryan-travel-agency/token"
	"github.com/YiChiaPeng/ryan-travel-agency/users/repositories"

	"github.com/redis/go-redis/v9"
)

const (
	refreshTokenPrefix   = "refresh_token:"
	refreshTokenDuration = 7 * 24 * time.Hour
)

// AuthController groups the authentication endpoints around the shared
// user repository, token maker and Redis-backed refresh token store.
type AuthController struct {
	UserRepo    repositories.UserRepository
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}
