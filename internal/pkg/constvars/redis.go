package constvars

const (
	RedisKeyDraftFormat           = "draft:%s"
	RedisKeyDraftSubmitLockFormat = "draft:%s:lock"
)
