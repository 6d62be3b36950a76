package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateDraftID() string {
	return uuid.NewString()
}

func GenerateMessageID() string {
	return uuid.NewString()
}

func GenerateLockValue() string {
	return uuid.NewString()
}
