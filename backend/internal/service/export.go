package service

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/teamboard/teamboard/shared/domain"
)

func ExportFileName(id domain.BoardId) string {
	return fmt.Sprintf("board_%d.txt", id)
}

var exportTemplate = template.Must(template.New("board").Funcs(template.FuncMap{
	"ts": func(t time.Time) string { return t.Format(time.RFC3339) },
}).Parse(`Board: {{.Board.Name}}
Description: {{.Board.Description}}
Status: {{.Board.Status}}
Team: {{.Board.TeamId}}
Created: {{ts .Board.CreatedAt}}
{{- with .Board.EndTime}}
Closed: {{ts .}}
{{- end}}
Tasks ({{len .Tasks}}):
{{- range .Tasks}}
- {{.Title}} (Status: {{.Status}})
  Assignee: user {{.UserId}}
  Description: {{.Description}}
{{- else}}
  (no tasks)
{{- end}}
Summary: OPEN {{.Open}} | IN_PROGRESS {{.InProgress}} | COMPLETE {{.Complete}}
`))

type exportView struct {
	Board      *domain.Board
	Tasks      []domain.Task
	Open       int
	InProgress int
	Complete   int
}

// RenderBoard produces the plain text export of a board. Tasks are rendered in
// the order given, so the same input always renders the same text.
func RenderBoard(board *domain.Board, tasks []domain.Task) ([]byte, error) {
	view := exportView{Board: board, Tasks: tasks}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskOpen:
			view.Open++
		case domain.TaskInProgress:
			view.InProgress++
		case domain.TaskComplete:
			view.Complete++
		}
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
