package pkg

import "golang.org/x/crypto/bcrypt"

const (
	// DefaultPasswordHashCost is the bcrypt cost used for stored user passwords.
	DefaultPasswordHashCost = 12
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

// HashPasswordWithCost hashes the password with the given bcrypt cost.
// Costs below bcrypt.MinCost are raised to bcrypt.DefaultCost; costs above
// bcrypt.MaxCost and passwords over MaxPasswordBytes are rejected.
func HashPasswordWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return BytesToString(bytes), err
}

// ValidPasswordHashCost reports whether cost is accepted as is by bcrypt.
func ValidPasswordHashCost(cost int) bool {
	return cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
