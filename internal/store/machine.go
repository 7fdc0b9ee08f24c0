package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const machineFileName = "machine_id"

// MachineID returns this host's durable identity, minting and caching it
// beside the store file on first use. The id is "<hostname>_<uuid>" so
// store files merged across machines stay readable by humans.
func MachineID(dir string) (string, error) {
	path := filepath.Join(dir, machineFileName)
	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	id := host + "_" + uuid.NewString()

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}
	return id, nil
}
