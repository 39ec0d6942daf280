package bot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/holdemsim/internal/game"
)

// Human prompts for a decision on the given reader/writer pair and
// retries until the input parses to a legal request. The retry loop is
// the only place the engine appears to wait on a seat; the decision call
// itself still blocks and returns like any other strategy.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman creates a human strategy reading from in and prompting on out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) Decide(sit game.Situation) game.Decision {
	fmt.Fprintf(h.out, "\nYour hand: %v  board: %v  pot: %d\n", sit.HoleCards, sit.Community, sit.Pot)
	fmt.Fprintf(h.out, "Highest bet %d, %d to call, %d chips behind.\n", sit.HighestBet, sit.CallAmount, sit.Chips)

	for {
		fmt.Fprintf(h.out, "[f]old, [k]check, [c]all, [r]aise <total>, [a]ll-in: ")
		if !h.in.Scan() {
			// Input closed; treat as a fold rather than hanging the hand.
			return game.Decision{Action: game.Fold}
		}

		fields := strings.Fields(strings.ToLower(h.in.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "f", "fold":
			return game.Decision{Action: game.Fold}
		case "k", "check":
			if sit.CallAmount > 0 {
				fmt.Fprintf(h.out, "cannot check, %d to call\n", sit.CallAmount)
				continue
			}
			return game.Decision{Action: game.Check}
		case "c", "call":
			return game.Decision{Action: game.Call}
		case "a", "allin", "all-in":
			return game.Decision{Action: game.AllIn}
		case "r", "raise":
			if len(fields) < 2 {
				fmt.Fprintln(h.out, "raise needs a total amount, e.g. \"r 200\"")
				continue
			}
			total, err := strconv.Atoi(fields[1])
			if err != nil || total <= 0 {
				fmt.Fprintf(h.out, "invalid amount %q\n", fields[1])
				continue
			}
			if total-sit.CurrentBet > sit.Chips {
				fmt.Fprintf(h.out, "you only have %d chips behind\n", sit.Chips)
				continue
			}
			return game.Decision{Action: game.Raise, Amount: total}
		default:
			fmt.Fprintf(h.out, "unrecognised action %q\n", fields[0])
		}
	}
}
