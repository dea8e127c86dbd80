//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Status represents the recorded outcome of a publish attempt
// ENUM(published,failed)
type Status string
