package tallylang

const Theory = `
# 1. Core Mission
Tallylang evaluates sum expressions of the form "Number (Plus Number)*". It is deliberately the smallest language that still has a real front end: a lexer that turns characters into tokens and a parser that turns tokens into a value. The two stages stay separate so each can be specified, tested, and replaced on its own.

# 2. Pipeline
# 2.1 Lexing
The lexer scans runes left to right with one rune of lookahead and never backs up. Digit runs fold into a single Number token as they are consumed; a plus sign becomes a Plus token; spaces separate tokens and produce nothing. Any other rune stops the scan immediately with an InvalidCharError naming the rune. There is no recovery pass: the first bad character wins.

# 2.2 Parsing
The parser walks the token sequence in a single forward pass, summing as it goes. It holds no tree; the grammar is regular, so the running total is the whole state. A missing operand or a dangling operator surfaces as UnexpectedEndError, a token the grammar does not allow at its position as InvalidTokenError carrying the token itself.

# 3. Cursor Protocol
Both stages share one cursor discipline: inspect the current element without consuming, then advance past it. Inspection at the end of input reports absence through a second return value, which is an ordinary condition every caller handles. Advancing past the end is different in kind: no correct caller can do it, so the lexer panics rather than returning an error. Malformed input is a value; a cursor driven off the end is a bug.

# 4. Closed Variants
Token kinds and error kinds are closed sets. A token is Number or Plus; a stage fails with exactly one of InvalidCharError, NumberOverflowError, UnexpectedEndError, or InvalidTokenError. Consumers switch over these sets exhaustively, so adding a variant is a compile-visible event, not a silent fallthrough.

# 5. Failure Semantics
Errors carry positions. Lexer errors point into the source rune by rune; parser errors carry the offending token, which in turn remembers where it was lexed. Annotate renders any of them as the message, the source line, and a caret under the column, so a bad input is diagnosable without a debugger.

# 6. Numeric Policy
Values are int64. A digit run whose value would not fit fails the lex with NumberOverflowError naming the full literal; summation itself is native int64 arithmetic and wraps like Go does. Rejecting unrepresentable literals at the boundary keeps the parser total over every token sequence the lexer can emit.
`
