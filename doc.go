/* Package main: kotoba (言葉) -- a word-based, stack-oriented notation

kotoba is a tiny interpreter in the FORTH tradition, written for a
Japanese-script surface syntax. Source text is split into words, words are
classified into a handful of token kinds, and execution is a single pass over
the tokens: values are pushed onto one shared operand stack, names are looked
up in one flat dictionary, and a declaration word flips the machine into a
compile mode that records tokens into a new named procedure instead of
running them.

Lexical shape:

Words are separated by whitespace (including the full-width space) and by
four particle characters that are never content: 、 。 と を. Three delimited
forms exist: 「...」 is a text literal, ※...※ is a comment, and a word ending
in the declaration character は marks the start of a definition. Numbers may
be written with ASCII or full-width digits, optionally minus-signed: 42, -5,
１２３, －５ all work.

A definition pushes its name as a literal, opens with とは (or any word
ending in は), and closes with です or おわり:

	「挨拶」とは 「こんにちは」書く 改行 です
	挨拶

prints こんにちは followed by a newline. Between the opening and closing
words, tokens are recorded rather than run; invoking the defined word later
replays them in order, exactly as if they had been typed inline. The name is
taken off the operand stack when the unit closes, so the dictionary is
mutated by the running program itself -- last definition wins.

Two sharp edges are kept deliberately, faithful to the machine this
interpreter reimplements. First, while already compiling, a は-marked token
does not nest; instead it records whatever name currently sits on top of the
operand stack as a "declarer": from then on that bare identifier behaves
like the built-in declaration keyword, which is how programs extend the
declaration syntax itself. Second, compilation can nest (a declarer met while
compiling opens another unit), but all nesting levels share the single
compile buffer: an inner unit that closes registers everything accumulated so
far, not an isolated slice of its own tokens.

Built-in words cover printing (書く, 改行), integer arithmetic (足す, 引く,
掛ける, ゼロか), text joining (つなぐ), stack shuffling (深さ, 捨てる,
入れ替える, and the bottom-reading 複写 and 負にする), reflective invocation
(実行), and loading another source file into the same machine (読み込む).

The kotoba command runs files, inline -e text, or piped stdin, and starts an
interactive line-at-a-time session on a terminal. Any failure -- an unknown
word, or popping an empty stack -- unwinds to the driver, which reports it
and exits non-zero.
*/
package main
