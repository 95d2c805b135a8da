package xviper

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	runIdentityKey = `tracking.identity`
	runCounterKey  = `stats.runs`
)

var guidSteps = []int{4, 2, 2, 2, 6}

func AsGuid(content []byte) string {
	result := make([]string, 0, len(guidSteps))
	for _, step := range guidSteps {
		result = append(result, fmt.Sprintf("%02x", content[:step]))
		content = content[step:]
	}
	return strings.Join(result, "-")
}

func generateRandomIdentity() string {
	digester := sha256.New()
	content := fmt.Sprintf("ID: %v/%v/%v", time.Now().Format(time.RFC3339Nano), os.Getpid(), os.Getppid())
	digester.Write([]byte(content))
	return AsGuid(digester.Sum(nil))
}

// RunIdentity is a stable per-installation GUID, created on first use.
func RunIdentity() string {
	identity := GetString(runIdentityKey)
	if len(identity) == 0 {
		identity = generateRandomIdentity()
		Set(runIdentityKey, identity)
	}
	return identity
}

// NextRunCounter bumps and returns the persisted run counter.
func NextRunCounter() int {
	count := GetInt(runCounterKey) + 1
	Set(runCounterKey, count)
	return count
}
