package machine

const Grammar = `
# tm program language

One instruction per line. Leading and trailing spaces are ignored, blank lines
are skipped. Words are separated by single spaces and are case-sensitive.

  Name:                 label; execution starts at Start:
  Move Left|Right       move the head; moving left of cell 0 grows the tape
  Write Blank|'c'       write a blank or the character c under the head
  Goto Name             jump to the label
  Return True|False     halt with a verdict
  If Blank|'c' <instr>  run <instr> when the head reads the symbol
  If Not Blank|'c' <instr>
                        run <instr> when the head reads anything else

If and If Not always move to the next line after their nested instruction,
even when it was a Goto: "If '1' Goto X" continues on the line after X.

# input file

  line 1: a 'v' above the starting head cell
  line 2: the initial tape, one character per cell
`
