package model

import "time"

const DefaultTimeout = 500 * time.Millisecond
const DefaultReconcileConcurrency = 8
const DefaultPendingTTL = 10 * 365 * 24 * time.Hour

const HeaderContentType = "Content-Type"

const (
	CookieJWT     = "jwt-token"
	CookieSession = "coins-session"
)

const FeeRedeemedTokens = "Redeemed tokens"

type ContextKey string

const (
	KeyContextLogger  ContextKey = "logger"
	KeyContextUserID  ContextKey = "user_id"
	KeyContextSession ContextKey = "session"
)

const KeyLoggerError = "error"
