package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// ConfigError: configuración ausente o inválida. Fatal antes de procesar.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DataSourceError: directorio de datos ausente o archivo no parseable.
// Fatal, aborta la carga completa (sin catálogo parcial).
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// ExternalServiceError: falla del catálogo externo sobre un registro.
// Se aísla por registro, nunca corta el batch.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("catalog service %s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
