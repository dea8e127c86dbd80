//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Platform represents a supported social network target
// ENUM(telegram,vk,instagram,facebook)
type Platform string

// ContentType represents the kind of promotional content being published
// ENUM(event,promotion)
type ContentType string

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string
