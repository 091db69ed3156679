package constants

const (
	ERROR_INPUT      = "Invalid input"
	ERROR_QUERY      = "Invalid query string"
	ERROR_PARSE_DATA = "Failed to read validated input"

	NOT_FOUND         = "No record found"
	MOVIE_NOT_FOUND   = "No movie found"
	THEATRE_NOT_FOUND = "Theatre not found"
	RELEASE_NOT_FOUND = "No release found"
	REVIEW_NOT_FOUND  = "No review found"
	BOOKING_NOT_FOUND = "No booking found"
	USER_NOT_FOUND    = "No user found"
	CITY_NOT_FOUND    = "No city found"

	NO_AVAILABILITY = "Invalid language or screen, no theatre found for this release"

	MISSING_TOKEN    = "Missing token"
	INVALID_TOKEN    = "Invalid token"
	FORBIDDEN        = "You are forbidden to get access"
	WRONG_CREDENTIAL = "Incorrect email or password"

	DUPLICATE_VALUE = "Duplicate field value, please use another value"
	RECORD_IN_USE   = "Record is still referenced by other records and cannot be deleted"
	INTERNAL_ERROR  = "Something went wrong"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	LocalPrincipal = "principal"
)
