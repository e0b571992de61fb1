package parser

import "github.com/btouchard/gdlint/internal/token"

// Precedence levels for the expression climber. Higher binds tighter.
const (
	precLowest = iota
	precAssignment    // = += -= ...
	precAs            // as
	precRange         // ..
	precTernary       // X if C else Y
	precOr            // or ||
	precAnd           // and &&
	precNot           // prefix not !
	precIn            // in, not in
	precComparison    // == != < <= > >=
	precBitOr         // |
	precBitXor        // ^
	precBitAnd        // &
	precShift         // << >>
	precSum           // + -
	precProduct       // * / %
	precUnary         // unary + -
	precBitNot        // prefix ~
	precPower         // **
	precIs            // is
	precAwait         // prefix await
	precCall          // (...)
	precProperty      // .
	precSubscript     // [...]
)

var infixPrecedence = map[token.Kind]int{
	token.ASSIGN:                  precAssignment,
	token.PLUS_ASSIGN:             precAssignment,
	token.MINUS_ASSIGN:            precAssignment,
	token.STAR_ASSIGN:             precAssignment,
	token.SLASH_ASSIGN:            precAssignment,
	token.PERCENT_ASSIGN:          precAssignment,
	token.POWER_ASSIGN:            precAssignment,
	token.AMP_ASSIGN:              precAssignment,
	token.PIPE_ASSIGN:             precAssignment,
	token.CARET_ASSIGN:            precAssignment,
	token.SHL_ASSIGN:              precAssignment,
	token.SHR_ASSIGN:              precAssignment,
	token.AS:                      precAs,
	token.RANGE:                   precRange,
	token.IF:                      precTernary,
	token.OR:                      precOr,
	token.SYM_OR:                  precOr,
	token.AND:                     precAnd,
	token.SYM_AND:                 precAnd,
	token.IN:                      precIn,
	token.NOT_IN:                  precIn,
	token.EQ:                      precComparison,
	token.NOT_EQ:                  precComparison,
	token.LT:                      precComparison,
	token.LT_EQ:                   precComparison,
	token.GT:                      precComparison,
	token.GT_EQ:                   precComparison,
	token.PIPE:                    precBitOr,
	token.CARET:                   precBitXor,
	token.AMP:                     precBitAnd,
	token.SHL:                     precShift,
	token.SHR:                     precShift,
	token.PLUS:                    precSum,
	token.MINUS:                   precSum,
	token.STAR:                    precProduct,
	token.SLASH:                   precProduct,
	token.PERCENT:                 precProduct,
	token.POWER:                   precPower,
	token.IS:                      precIs,
	token.LPAREN:                  precCall,
	token.DOT:                     precProperty,
	token.LBRACKET:                precSubscript,
}

// rightAssociative marks the handful of operators that bind right-to-left:
// the ternary and the assignment family.
func rightAssociative(kind token.Kind) bool {
	return kind == token.IF || token.IsAnyAssignment(kind)
}

func precedenceOf(kind token.Kind) int {
	if p, ok := infixPrecedence[kind]; ok {
		return p
	}
	return precLowest
}
