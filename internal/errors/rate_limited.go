package errors

var ErrRateLimited = New(KindRateLimited, "rate limit exceeded")
