package reconciler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// StdinOddsProvider prompts on the console for a game's over/under and
// moneylines. Blocks the pipeline on input, which is acceptable for a
// once-per-invocation run
type StdinOddsProvider struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinOddsProvider creates a provider reading stdin and prompting
// on stdout
func NewStdinOddsProvider() *StdinOddsProvider {
	return &StdinOddsProvider{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// NewManualOddsProvider creates a provider over explicit streams,
// used by tests
func NewManualOddsProvider(in io.Reader, out io.Writer) *StdinOddsProvider {
	return &StdinOddsProvider{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// OddsFor prompts for the three odds values of one game
func (p *StdinOddsProvider) OddsFor(game models.Game) (models.OddsRecord, error) {
	overUnder, err := p.promptFloat(fmt.Sprintf("%s vs %s over/under: ", game.HomeTeam, game.AwayTeam))
	if err != nil {
		return models.OddsRecord{}, err
	}

	homeML, err := p.promptFloat(fmt.Sprintf("%s odds: ", game.HomeTeam))
	if err != nil {
		return models.OddsRecord{}, err
	}

	awayML, err := p.promptFloat(fmt.Sprintf("%s odds: ", game.AwayTeam))
	if err != nil {
		return models.OddsRecord{}, err
	}

	return models.OddsRecord{
		OverUnder:     overUnder,
		HomeMoneyline: int(homeML),
		AwayMoneyline: int(awayML),
	}, nil
}

func (p *StdinOddsProvider) promptFloat(prompt string) (float64, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "+"))
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}

	return value, nil
}
