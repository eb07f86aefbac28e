// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"errors"

	"github.com/invowk/coreutils/internal/argscan"
	"github.com/invowk/coreutils/internal/issue"
)

type (
	// parsedArgs is the outcome of parseArgs.
	parsedArgs struct {
		operands []string
		help     bool
		version  bool
	}

	// setFunc applies one recognized option. option is the spelling used on
	// the command line ("-n", "--lines"); value is empty for options that
	// take none.
	setFunc func(f FlagInfo, option, value string) error
)

// parseArgs tokenizes args (without the program name) against flags. --help
// and --version are always recognized and stop parsing where they appear.
// Long options may be abbreviated to any unique prefix.
func parseArgs(args []string, flags []FlagInfo, set setFunc) (parsedArgs, error) {
	var res parsedArgs

	all := append(append([]FlagInfo(nil), flags...), helpFlag, versionFlag)
	var candidates []string
	for _, f := range all {
		candidates = append(candidates, f.longNames()...)
	}

	sc := argscan.New(args)
	for tok, ok := sc.Next(); ok; tok, ok = sc.Next() {
		switch tok.Kind {
		case argscan.Value:
			res.operands = append(res.operands, tok.Value)

		case argscan.EndOfOptions:

		case argscan.Short:
			f, found := lookupShort(flags, tok.Rune)
			if !found {
				return res, issue.NewUnknownOption(tok.Flag())
			}
			value := ""
			if f.TakesValue {
				v, ok := sc.OptionValue()
				if !ok {
					return res, &issue.ParseError{Kind: issue.MissingOperand, Option: tok.Flag()}
				}
				value = v
			}
			if err := set(f, tok.Flag(), value); err != nil {
				return res, err
			}

		case argscan.Long, argscan.LongWithValue:
			name, err := argscan.Match(tok.Name, candidates)
			if err != nil {
				if errors.Is(err, argscan.ErrAmbiguous) {
					return res, &issue.ParseError{Kind: issue.AmbiguousOption, Option: tok.Flag(), Err: err}
				}
				return res, issue.NewUnknownOption(tok.Flag())
			}
			f := lookupLong(all, name)
			option := "--" + name

			if !f.TakesValue && tok.Kind == argscan.LongWithValue {
				return res, &issue.ParseError{Kind: issue.UnexpectedArgument, Option: option}
			}
			switch f.Name {
			case helpFlag.Name:
				res.help = true
				return res, nil
			case versionFlag.Name:
				res.version = true
				return res, nil
			}

			value := tok.Value
			if f.TakesValue && tok.Kind == argscan.Long {
				v, ok := sc.OptionValue()
				if !ok {
					return res, &issue.ParseError{Kind: issue.MissingOperand, Option: option}
				}
				value = v
			}
			if err := set(f, option, value); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func lookupShort(flags []FlagInfo, r rune) (FlagInfo, bool) {
	for _, f := range flags {
		if f.ShortName == string(r) {
			return f, true
		}
	}
	return FlagInfo{}, false
}

// lookupLong finds the flag owning a long name already resolved by Match.
func lookupLong(flags []FlagInfo, name string) FlagInfo {
	for _, f := range flags {
		for _, n := range f.longNames() {
			if n == name {
				return f
			}
		}
	}
	return FlagInfo{}
}
