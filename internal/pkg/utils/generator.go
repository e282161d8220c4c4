package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateObjectName builds a collision-free stored-object name like
// "tracking/6633..._20250102_150405.png".
func GenerateObjectName(prefix, fileName string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s/%s_%s_%s", prefix, uuid.NewString(), timestamp, fileName)
}
