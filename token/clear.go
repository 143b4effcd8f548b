package token

import "reflect"

// ClearTrivia is used by ast's token-bag types to implement ClearComments and
// ClearWhitespace generically: it reflects over bag (a pointer to a struct of
// Token and []Token fields) and sweeps every trivia it finds, so each bag
// type only needs two one-line methods instead of hand-rolling the field
// walk itself.
func ClearTrivia(bag any, comments bool) {
	v := reflect.ValueOf(bag)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	tokenType := reflect.TypeOf(Token{})
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch {
		case field.Type() == tokenType:
			clearOne(field.Addr().Interface().(*Token), comments)
		case field.Kind() == reflect.Slice && field.Type().Elem() == tokenType:
			for j := 0; j < field.Len(); j++ {
				clearOne(field.Index(j).Addr().Interface().(*Token), comments)
			}
		case field.Kind() == reflect.Ptr && field.Type().Elem() == tokenType:
			if !field.IsNil() {
				clearOne(field.Interface().(*Token), comments)
			}
		}
	}
}

func clearOne(tok *Token, comments bool) {
	if comments {
		tok.ClearComments()
	} else {
		tok.ClearWhitespace()
	}
}
