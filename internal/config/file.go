package config

import (
	"errors"
	"io/fs"
)

// isMissingFile - viper возвращает *fs.PathError, когда SetConfigFile указывает на несуществующий файл
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
