package config

import (
	"fmt"
	"strings"
)

type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}

// KeyError reports an invalid value for a config key.
type KeyError struct {
	Key   string
	Value string
	Err   error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func unknownKey(key string) error {
	quoted := make([]string, 0, len(Keys()))
	for _, k := range Keys() {
		quoted = append(quoted, fmt.Sprintf("'%s'", k))
	}
	return fmt.Errorf("unknown config key %q. Please choose from %s", key, strings.Join(quoted, ", "))
}
