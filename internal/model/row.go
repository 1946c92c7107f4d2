package model

// ListOfStringSchema is the declared type of the output column: every row of
// the result is a variable-length list of strings.
const ListOfStringSchema = "list[str]"

// TokenRow is one row of the input column: an ordered list of word tokens.
// The row owns its tokens; generation only borrows them.
type TokenRow []string

// RowFromValues interprets one decoded JSON row as a token row. Rows arrive
// as lists of arbitrary scalars. Null entries are filtered out before they
// reach the generator; a row containing any other non-string value cannot be
// interpreted as a token sequence and reports ok=false, which the caller maps
// to an empty gram list rather than failing the batch.
func RowFromValues(values []interface{}) (TokenRow, bool) {
	if len(values) == 0 {
		return nil, true
	}

	tokens := make(TokenRow, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		tokens = append(tokens, s)
	}
	return tokens, true
}
