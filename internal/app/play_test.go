package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-cli/internal/app"
	"quiz-cli/internal/domain"
	"quiz-cli/internal/infra/memory"
)

func TestPlayAllCorrectExhausts(t *testing.T) {
	store, _ := newTestStore(t)
	play := app.NewPlayWithRand(store, first)
	prompter := &scriptedPrompter{answers: []string{"4", "Paris"}}

	result, err := play.Run(context.Background(), prompter, nil)
	require.NoError(t, err)
	assert.Equal(t, app.StateExhausted, result.State)
	assert.Equal(t, 2, result.Score)
	assert.False(t, result.Empty)
	assert.Equal(t, []string{"2+2??", "capital of France??"}, prompter.asked)
}

func TestPlayStopsOnFirstWrongAnswer(t *testing.T) {
	store, _ := newTestStore(t)
	play := app.NewPlayWithRand(store, first)
	prompter := &scriptedPrompter{answers: []string{"wrong", "Paris"}}

	result, err := play.Run(context.Background(), prompter, nil)
	require.NoError(t, err)
	assert.Equal(t, app.StateIncorrect, result.State)
	assert.Equal(t, 0, result.Score)
	assert.Len(t, prompter.asked, 1)
}

func TestPlayEmptyAnswerIsWrong(t *testing.T) {
	store, _ := newTestStore(t)
	play := app.NewPlayWithRand(store, first)

	_, ok, err := play.Next()
	require.NoError(t, err)
	require.True(t, ok)

	correct, err := play.Answer("   ")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, app.StateIncorrect, play.State())
	assert.True(t, play.State().Terminal())
}

func TestPlayTrimsButKeepsCase(t *testing.T) {
	record := domain.Record{Question: "capital of France?", Answer: "Paris"}

	assert.True(t, app.IsCorrect(record, "  Paris \n"))
	assert.False(t, app.IsCorrect(record, "paris"))
	assert.False(t, app.IsCorrect(record, "Pa ris"))
}

func TestPlayOnEmptyStore(t *testing.T) {
	store, err := app.OpenQuizStore(context.Background(), memory.NewRecordStore(nil), nil)
	require.NoError(t, err)
	prompter := &scriptedPrompter{}

	result, err := app.NewPlay(store).Run(context.Background(), prompter, nil)
	require.NoError(t, err)
	assert.Equal(t, app.StateExhausted, result.State)
	assert.Equal(t, 0, result.Score)
	assert.True(t, result.Empty)
	assert.Empty(t, prompter.asked)
}

func TestPlayNeverRepeatsAQuestion(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewRecordStore(nil)
	store, err := app.OpenQuizStore(ctx, backend, nil)
	require.NoError(t, err)
	answers := map[string]string{}
	for _, q := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := store.Add(ctx, q, q+"!")
		require.NoError(t, err)
		answers[q+"?"] = q + "!"
	}

	for round := 0; round < 20; round++ {
		prompter := &oraclePrompter{answers: answers}
		result, err := app.NewPlay(store).Run(ctx, prompter, nil)
		require.NoError(t, err)
		assert.Equal(t, app.StateExhausted, result.State)
		assert.Equal(t, store.Count(), result.Score)
		assert.Len(t, prompter.seen, store.Count())
	}
}

func TestPlayDrawsFromRemainingOnly(t *testing.T) {
	store, _ := newTestStore(t)
	var sizes []int
	play := app.NewPlayWithRand(store, func(n int) int {
		sizes = append(sizes, n)
		return n - 1
	})
	prompter := &scriptedPrompter{answers: []string{"Paris", "4"}}

	result, err := play.Run(context.Background(), prompter, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, []int{2, 1}, sizes)
	assert.Equal(t, []string{"capital of France??", "2+2??"}, prompter.asked)
}

func TestPlayObserverSeesEveryAnswer(t *testing.T) {
	store, _ := newTestStore(t)
	observer := &recordingObserver{}

	_, err := app.NewPlayWithRand(store, first).Run(context.Background(), &scriptedPrompter{answers: []string{"4", "London"}}, observer)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, observer.correct)
	assert.Equal(t, []int{1, 1}, observer.scores)
}

func TestPlayRejectsMisuse(t *testing.T) {
	store, _ := newTestStore(t)
	play := app.NewPlayWithRand(store, first)

	_, err := play.Answer("4")
	assert.ErrorIs(t, err, domain.ErrNoQuestionPosed)

	_, _, err = play.Next()
	require.NoError(t, err)
	_, err = play.Answer("nope")
	require.NoError(t, err)

	_, _, err = play.Next()
	assert.ErrorIs(t, err, domain.ErrPlayFinished)
	_, err = play.Answer("4")
	assert.ErrorIs(t, err, domain.ErrPlayFinished)
}

func TestPlayPropagatesPrompterError(t *testing.T) {
	store, _ := newTestStore(t)
	abort := errors.New("interrupted")

	_, err := app.NewPlay(store).Run(context.Background(), &scriptedPrompter{err: abort}, nil)
	assert.ErrorIs(t, err, abort)
}

func first(int) int { return 0 }

type scriptedPrompter struct {
	answers []string
	asked   []string
	err     error
}

func (p *scriptedPrompter) Ask(_ context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.asked = append(p.asked, prompt)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type oraclePrompter struct {
	answers map[string]string
	seen    map[string]struct{}
}

func (p *oraclePrompter) Ask(_ context.Context, prompt string) (string, error) {
	if p.seen == nil {
		p.seen = map[string]struct{}{}
	}
	if _, dup := p.seen[prompt]; dup {
		return "", errors.New("question asked twice: " + prompt)
	}
	p.seen[prompt] = struct{}{}
	return p.answers[prompt], nil
}

type recordingObserver struct {
	correct []bool
	scores  []int
}

func (o *recordingObserver) Judged(_ domain.Record, correct bool, score int) {
	o.correct = append(o.correct, correct)
	o.scores = append(o.scores, score)
}
