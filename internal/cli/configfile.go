package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfigArgs reads the grusp config file and returns default arguments
// to prepend to the command line. Location: GRUSP_CONFIG_PATH env var, or
// ~/.grusp. Format: one flag per line, # comments, empty lines ignored.
// Returns nil if no config file exists.
func LoadConfigArgs() []string {
	path := os.Getenv("GRUSP_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".grusp")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}
