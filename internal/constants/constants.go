package constants

const (
	// ContextKeyUserID is the session and gin-context key for the
	// authenticated user's id.
	ContextKeyUserID = "user_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "roomies_session"

	// MinPasswordLength is the minimum accepted password length at
	// registration.
	MinPasswordLength = 8

	// VerificationTokenBytes is the entropy of the email verification
	// token before hex encoding.
	VerificationTokenBytes = 32

	// Advisory age bounds for roommate profiles.
	MinRoommateAge = 18
	MaxRoommateAge = 99

	// DefaultListingImage is used when a listing is created without an
	// image URL.
	DefaultListingImage = "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&q=80&w=800"

	// DefaultProfileImage is used when a roommate profile is created
	// without an image URL.
	DefaultProfileImage = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400"
)
