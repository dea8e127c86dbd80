//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package classify

// Category labels a publish failure for retry and messaging decisions
// ENUM(token_expired,validation,transient)
type Category string
