package core

import (
	"errors"
	"os"
	"strconv"
)

func Address(host string, port int) string {
	return host + ":" + strconv.Itoa(port)
}

// https://stackoverflow.com/a/12518877
func FileExists(filePath string) (bool, error) {
	if _, err := os.Stat(filePath); err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}
