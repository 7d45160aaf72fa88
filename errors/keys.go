package errors

// Key is a stable error identifier a presentation layer maps to a
// user-facing message.
type Key string

const (
	KeyIsNullEmptyOrWhiteSpace         Key = "IsNullEmptyOrWhiteSpace"
	KeyIsTooLong                       Key = "IsTooLong"
	KeyIsLessThanMinimum               Key = "IsLessThanMinimum"
	KeyCalculatedValueIsGreaterThanMax Key = "CalculatedValueIsGreaterThanMax"
	KeyCalculatedValueIsNegative       Key = "CalculatedValueIsNegative"
	KeyArgumentIsDefault               Key = "ArgumentIsDefault"
	KeyArgumentIsNull                  Key = "ArgumentIsNull"
	KeyArgumentIsNotNullOrEmpty        Key = "ArgumentIsNotNullOrEmpty"
	KeyArgumentIsNullEmptyOrWhiteSpace Key = "ArgumentIsNullEmptyOrWhiteSpace"
)

// String returns the key as a string.
func (k Key) String() string {
	return string(k)
}

// Keys returns every key the kernel emits.
func Keys() []Key {
	return []Key{
		KeyIsNullEmptyOrWhiteSpace,
		KeyIsTooLong,
		KeyIsLessThanMinimum,
		KeyCalculatedValueIsGreaterThanMax,
		KeyCalculatedValueIsNegative,
		KeyArgumentIsDefault,
		KeyArgumentIsNull,
		KeyArgumentIsNotNullOrEmpty,
		KeyArgumentIsNullEmptyOrWhiteSpace,
	}
}
