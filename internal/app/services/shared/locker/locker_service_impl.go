package locker

import (
	"context"
	"errors"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

// lockService is a best-effort single-holder lock on a redis key. The lock
// value is a random token so only the holder can release it.
type lockService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewLockService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			RedisRepository: redisRepository,
			Log:             logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)

	lockValue := utils.GenerateLockValue()
	acquired, err := s.RedisRepository.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error setting lock key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}
	if !acquired {
		s.Log.Info("lockService.TryLock lock held elsewhere",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	return true, lockValue, nil
}

// Unlock releases key if it still holds lockValue. An expired lock is not an
// error.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("lockService.Unlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)

	stored, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if stored == "" {
		return nil
	}

	var storedValue string
	err = json.Unmarshal([]byte(stored), &storedValue)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if storedValue != lockValue {
		s.Log.Warn("lockService.Unlock lock owned by another holder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockStoredValueKey, storedValue),
			zap.String(constvars.LoggingLockExpectedValueKey, lockValue),
		)
		return exceptions.ErrRedisUnlock(errors.New("lock not owned by this holder"))
	}

	return s.RedisRepository.Delete(ctx, key)
}
