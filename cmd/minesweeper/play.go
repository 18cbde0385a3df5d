package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type options struct {
	params   game.Params
	askMines bool
}

func readMineCount(sc *bufio.Scanner, out io.Writer) (int, error) {
	for {
		fmt.Fprintln(out, "How many mines do you want on the field?")
		if !sc.Scan() {
			return 0, inputError(sc)
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(out, "mine count must be integer number")
	}
}

func inputError(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return err
	}
	return ErrInputClosed
}

// run plays one game reading commands from in and drawing the field to out.
func run(in io.Reader, out io.Writer, opts options, r *rand.Rand) error {
	sc := bufio.NewScanner(in)

	params := opts.params
	if opts.askMines {
		n, err := readMineCount(sc, out)
		if err != nil {
			return err
		}
		params.MineCount = n
	}

	g, err := game.New(params, r)
	if err != nil {
		return err
	}
	if err := g.Field.Render(out, false); err != nil {
		return err
	}

	for !g.Over() {
		fmt.Fprint(out, "Set/unset mine marks or claim a cell as free: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return inputError(sc)
		}

		cmd, err := mines.ParseCommand(sc.Text())
		if err == nil {
			_, err = g.Play(cmd)
		}
		if err != nil {
			log.WithField("input", sc.Text()).Debug(err)
			fmt.Fprintln(out, err)
			continue
		}

		log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"status":  g.Status.String(),
		}).Debug("move")

		if err := g.Field.Render(out, false); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"status": g.Status.String(),
		"moves":  g.Moves,
	}).Info("game over")

	if g.Status == game.Lost {
		fmt.Fprintln(out, "You stepped on a mine and failed!")
	} else {
		fmt.Fprintln(out, "Congratulations! You found all the mines!")
	}
	return nil
}
