package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrInvalidStructure  = errors.New("invalid translations structure")
	ErrNoTranslations    = errors.New("no translations found")
	ErrInvalidLanguage   = errors.New("invalid language tag")
)
