package cli

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"quiz-cli/internal/app"
	"quiz-cli/internal/console"
	"quiz-cli/internal/domain"
)

// Dispatcher maps a typed command line onto one store or play operation.
type Dispatcher struct {
	store   *app.QuizStore
	console *console.Console
	prompt  *LinePrompt
	log     *slog.Logger
	newPlay func(app.RecordReader) *app.Play
}

func NewDispatcher(store *app.QuizStore, c *console.Console, prompt *LinePrompt, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:   store,
		console: c,
		prompt:  prompt,
		log:     log,
		newPlay: app.NewPlay,
	}
}

// Exec runs one command line. Bad ids and failed saves are reported to the
// user and swallowed; only input errors (io.EOF, cancellation) are returned.
func (d *Dispatcher) Exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(fields[0])
	var id string
	if len(fields) > 1 {
		id = fields[1]
	}
	d.log.Debug("command", "cmd", cmd, "id", id)

	switch cmd {
	case "h", "help":
		d.help()
	case "list":
		d.list()
	case "show":
		err = d.show(id)
	case "add":
		err = d.add(ctx)
	case "delete":
		err = d.delete(ctx, id)
	case "edit":
		err = d.edit(ctx, id)
	case "test":
		err = d.test(ctx, id)
	case "p", "play":
		err = d.play(ctx)
	case "credits":
		d.credits()
	case "q", "quit":
		return true, nil
	default:
		d.console.Log("Comando desconocido: '%s'", d.console.Colorize(cmd, "red"))
		d.console.Log("Use %s para ver todos los comandos disponibles.", d.console.Colorize("help", "green"))
	}
	return false, d.report(err)
}

// report prints user-facing failures and passes the rest through.
func (d *Dispatcher) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		d.console.Error(err.Error())
		return nil
	case errors.Is(err, domain.ErrPersist):
		d.log.Warn("command failed", "err", err)
		d.console.Error(err.Error())
		return nil
	}
	return err
}

func (d *Dispatcher) help() {
	d.console.Log("Comandos:")
	d.console.Log("   h|help - Muestra esta ayuda.")
	d.console.Log("   list - Listar los quizzes existentes.")
	d.console.Log("   show <id> - Muestra la pregunta y la respuesta el quiz indicado.")
	d.console.Log("   add - Añadir un nuevo quiz interactivamente.")
	d.console.Log("   delete <id> - Borrar el quiz indicado.")
	d.console.Log("   edit <id> - Editar el quiz indicado.")
	d.console.Log("   test <id> - Probar el quiz indicado.")
	d.console.Log("   p|play - Jugar a preguntar aleatoriamente todos los quizzes.")
	d.console.Log("   credits - Créditos.")
	d.console.Log("   q|quit - Salir del programa.")
}

func (d *Dispatcher) credits() {
	d.console.Log("Autores de la práctica:")
	d.console.Log("   Jose Ignacio Villegas Villegas")
}

func (d *Dispatcher) list() {
	for _, item := range d.store.All() {
		d.console.Log(" [%s]: %s", d.console.Colorize(item.Index, "magenta"), item.Record.Question)
	}
}

func (d *Dispatcher) show(id string) error {
	i, record, err := d.store.Resolve(id)
	if err != nil {
		return err
	}
	d.console.Log(" [%s]: %s", d.console.Colorize(i, "magenta"), d.describe(record))
	return nil
}

func (d *Dispatcher) add(ctx context.Context) error {
	question, err := d.prompt.Ask(ctx, "Introduzca una pregunta: ")
	if err != nil {
		return err
	}
	answer, err := d.prompt.Ask(ctx, "Introduzca una respuesta: ")
	if err != nil {
		return err
	}
	if _, err := d.store.Add(ctx, question, answer); err != nil {
		return err
	}
	d.console.Log("%s: %s", d.console.Colorize("Se ha añadido", "magenta"), d.describe(domain.Record{Question: question, Answer: answer}))
	return nil
}

func (d *Dispatcher) delete(ctx context.Context, id string) error {
	i, _, err := d.store.Resolve(id)
	if err != nil {
		return err
	}
	removed, err := d.store.Delete(ctx, i)
	if err != nil {
		return err
	}
	d.console.Log("El quiz '%s' ha sido borrado satisfactoriamente.", d.describe(removed))
	return nil
}

func (d *Dispatcher) edit(ctx context.Context, id string) error {
	i, old, err := d.store.Resolve(id)
	if err != nil {
		return err
	}
	question, err := d.prompt.AskDefault(ctx, "Introduzca una pregunta: ", old.Question)
	if err != nil {
		return err
	}
	answer, err := d.prompt.AskDefault(ctx, "Introduzca una respuesta: ", old.Answer)
	if err != nil {
		return err
	}
	if err := d.store.Update(ctx, i, question, answer); err != nil {
		return err
	}
	tag := d.console.Colorize(i, "magenta")
	d.console.Log("Se ha cambiado el quiz '[%s] %s' por: '[%s] %s'", tag, d.describe(old), tag, d.describe(domain.Record{Question: question, Answer: answer}))
	return nil
}

func (d *Dispatcher) test(ctx context.Context, id string) error {
	_, record, err := d.store.Resolve(id)
	if err != nil {
		return err
	}
	answer, err := d.prompt.Ask(ctx, record.Question+"?")
	if err != nil {
		return err
	}
	d.verdict(app.IsCorrect(record, answer))
	return nil
}

func (d *Dispatcher) play(ctx context.Context) error {
	result, err := d.newPlay(d.store).Run(ctx, d.prompt, d)
	if err != nil {
		return err
	}
	d.log.Info("play finished", "state", result.State, "score", result.Score)

	if result.State == app.StateExhausted {
		d.console.Log("No hay preguntas para responder.")
		d.console.Log("La puntuación obtenida es de:")
		d.console.Big(result.Score, "red")
	}
	return nil
}

// Judged implements app.PlayObserver.
func (d *Dispatcher) Judged(_ domain.Record, correct bool, score int) {
	d.verdict(correct)
	if correct {
		d.console.Log("Tu puntuación es:")
	} else {
		d.console.Log("Se acabó el juego, su puntuación ha sido:")
	}
	d.console.Big(score, "yellow")
}

func (d *Dispatcher) verdict(correct bool) {
	if correct {
		d.console.Big("correcto", "green")
		return
	}
	d.console.Big("incorrecto", "red")
}

func (d *Dispatcher) describe(r domain.Record) string {
	return r.Question + " " + d.console.Colorize("=>", "magenta") + " " + r.Answer
}
