package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateMailID returns a new unique mail identifier. The id combines the
// current wall-clock time in milliseconds with a random suffix, so ids sort
// roughly by creation time and collisions are negligible at any realistic
// mail volume.
func GenerateMailID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d-%s", time.Now().UTC().UnixMilli(), suffix)
}
