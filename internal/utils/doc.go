// Package utils provides shared infrastructure: the zap logger factory and
// the Viper-backed configuration loader used by the command layer.
package utils
