package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults for settings that neither flags, file nor environment provide.
const (
	DefaultScript   = "hiragana"
	DefaultShuffle  = true
	DefaultCount    = 0
	DefaultLogLevel = "info"
)

// Settings is the merged runtime configuration.
type Settings struct {
	Script   string `validate:"oneof=hiragana katakana"`
	Shuffle  bool
	Count    int
	Options  string
	DBPath   string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Script:   DefaultScript,
		Shuffle:  DefaultShuffle,
		Count:    DefaultCount,
		DBPath:   DefaultDBPath(),
		LogLevel: DefaultLogLevel,
	}
}

// ApplyFile copies values set in the file onto s.
func (s *Settings) ApplyFile(fc FileConfig) {
	setString(&s.Script, fc.Study.Script)
	setBool(&s.Shuffle, fc.Study.Shuffle)
	setInt(&s.Count, fc.Study.Count)
	setString(&s.Options, fc.Study.Options)
	setString(&s.DBPath, fc.Storage.DB)
	setString(&s.LogLevel, fc.Log.Level)
}

// ApplyEnv copies environment overrides onto s.
func (s *Settings) ApplyEnv(env EnvConfig) {
	setString(&s.DBPath, env.DB)
	setString(&s.LogLevel, env.LogLevel)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalizes s, then checks it. A negative count means all cards.
func (s *Settings) Validate() error {
	s.Script = strings.ToLower(strings.TrimSpace(s.Script))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if s.Count < 0 {
		s.Count = 0
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fmt.Sprint(fe.Value()))
	case "required":
		return fmt.Sprintf("%s must not be empty", name)
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}

func setString(target, value *string) {
	if value != nil {
		*target = *value
	}
}

func setBool(target, value *bool) {
	if value != nil {
		*target = *value
	}
}

func setInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}
