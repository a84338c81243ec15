package report

import (
	"fmt"
	"strconv"
	"strings"

	"pmreport/internal/domain/document"
)

// TextFallback replaces null or blank optional text fields in the output.
const TextFallback = "Brak"

func textOrFallback(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return TextFallback
	}
	return *value
}

func textOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// employeePerformance is the typed record behind the employee report section.
type employeePerformance struct {
	Employee        string
	TeamLeader      string
	TotalTasks      int
	Completed       int
	Canceled        int
	CompletionRate  float64
	CompletedTitles string
	PendingTitles   string
}

func newEmployeePerformance(row *Row) employeePerformance {
	return employeePerformance{
		Employee:        row.Name,
		TeamLeader:      textOrFallback(row.TeamLeader),
		TotalTasks:      row.TotalTasks,
		Completed:       row.CompletedTasks,
		Canceled:        row.CanceledTasks,
		CompletionRate:  floatOrZero(row.CompletionRate),
		CompletedTitles: textOrFallback(row.CompletedTitles),
		PendingTitles:   textOrFallback(row.PendingTitles),
	}
}

func (r employeePerformance) blocks() []document.Block {
	return []document.Block{
		keyValueTable([]labelValue{
			{"Pracownik", r.Employee},
			{"Lider zespołu", r.TeamLeader},
			{"Liczba zadań", strconv.Itoa(r.TotalTasks)},
			{"Ukończone", strconv.Itoa(r.Completed)},
			{"Anulowane", strconv.Itoa(r.Canceled)},
			{"Współczynnik ukończenia(%)", formatRate(r.CompletionRate)},
		}),
		document.Paragraph{Label: "Zadania ukończone:", Text: r.CompletedTitles},
		document.Paragraph{Label: "Zadania oczekujące:", Text: r.PendingTitles},
	}
}

// projectProgress is the typed record behind the project report section.
type projectProgress struct {
	Project              string
	Manager              string
	Status               string
	OverallProgress      float64
	TotalMilestones      int
	AvgMilestoneProgress float64
	TotalTasks           int
	CompletedTasks       int
	CanceledTasks        int
	Teams                string
	TeamLeaders          string
	MilestoneNames       string
	TaskTitles           string
}

func newProjectProgress(row *Row) projectProgress {
	return projectProgress{
		Project:              row.Name,
		Manager:              textOrFallback(row.Manager),
		Status:               textOrEmpty(row.Status),
		OverallProgress:      floatOrZero(row.OverallProgress),
		TotalMilestones:      row.TotalMilestones,
		AvgMilestoneProgress: floatOrZero(row.AvgMilestoneProgress),
		TotalTasks:           row.TotalTasks,
		CompletedTasks:       row.CompletedTasks,
		CanceledTasks:        row.CanceledTasks,
		Teams:                textOrFallback(row.Teams),
		TeamLeaders:          textOrFallback(row.TeamLeaders),
		MilestoneNames:       textOrFallback(row.MilestoneNames),
		TaskTitles:           textOrFallback(row.TaskTitles),
	}
}

func (r projectProgress) blocks() []document.Block {
	return []document.Block{
		keyValueTable([]labelValue{
			{"Projekt", r.Project},
			{"Menedżer", r.Manager},
			{"Status", r.Status},
			{"Progres całkowity(%)", formatRate(r.OverallProgress)},
			{"Liczba kamieni milowych", strconv.Itoa(r.TotalMilestones)},
			{"Średni postęp kamieni(%)", formatRate(r.AvgMilestoneProgress)},
			{"Liczba zadań", strconv.Itoa(r.TotalTasks)},
			{"Ukończone zadania", strconv.Itoa(r.CompletedTasks)},
			{"Anulowane zadania", strconv.Itoa(r.CanceledTasks)},
			{"Zespoły", r.Teams},
			{"Liderzy zespołów", r.TeamLeaders},
		}),
		document.Paragraph{Label: "Kamienie milowe:", Text: r.MilestoneNames},
		document.Paragraph{Label: "Zadania w projekcie:", Text: r.TaskTitles},
	}
}

// executiveOverview is the typed record behind the executive report section.
type executiveOverview struct {
	Project              string
	Status               string
	Progress             float64
	Manager              string
	TeamsCount           int
	EmployeesCount       int
	TotalMilestones      int
	TotalTasks           int
	CompletedTasks       int
	CanceledTasks        int
	CompletionRate       float64
	AvgMilestoneProgress float64
	OverdueMilestones    int
	OverdueTasks         int
	Teams                string
	TeamLeaders          string
	TaskTitles           string
}

func newExecutiveOverview(row *Row) executiveOverview {
	return executiveOverview{
		Project:              row.Name,
		Status:               textOrEmpty(row.Status),
		Progress:             floatOrZero(row.OverallProgress),
		Manager:              textOrFallback(row.Manager),
		TeamsCount:           row.TeamsCount,
		EmployeesCount:       row.EmployeesCount,
		TotalMilestones:      row.TotalMilestones,
		TotalTasks:           row.TotalTasks,
		CompletedTasks:       row.CompletedTasks,
		CanceledTasks:        row.CanceledTasks,
		CompletionRate:       floatOrZero(row.CompletionRate),
		AvgMilestoneProgress: floatOrZero(row.AvgMilestoneProgress),
		OverdueMilestones:    row.OverdueMilestones,
		OverdueTasks:         row.OverdueTasks,
		Teams:                textOrFallback(row.Teams),
		TeamLeaders:          textOrFallback(row.TeamLeaders),
		TaskTitles:           textOrFallback(row.TaskTitles),
	}
}

func (r executiveOverview) blocks() []document.Block {
	return []document.Block{
		keyValueTable([]labelValue{
			{"Projekt", r.Project},
			{"Status", r.Status},
			{"Postęp projektu(%)", formatRate(r.Progress)},
			{"Menedżer projektu", r.Manager},
			{"Liczba zespołów", strconv.Itoa(r.TeamsCount)},
			{"Liczba pracowników", strconv.Itoa(r.EmployeesCount)},
			{"Liczba kamieni milowych", strconv.Itoa(r.TotalMilestones)},
			{"Liczba zadań", strconv.Itoa(r.TotalTasks)},
			{"Zadania zakończone", strconv.Itoa(r.CompletedTasks)},
			{"Zadania anulowane", strconv.Itoa(r.CanceledTasks)},
			{"% ukończonych zadań", formatRate(r.CompletionRate)},
			{"Średni postęp kamieni(%)", formatRate(r.AvgMilestoneProgress)},
			{"Opóźnione kamienie milowe", strconv.Itoa(r.OverdueMilestones)},
			{"Opóźnione zadania", strconv.Itoa(r.OverdueTasks)},
			{"Zespoły", r.Teams},
			{"Liderzy zespołów", r.TeamLeaders},
		}),
		document.Paragraph{Label: "Zadania w projekcie:", Text: r.TaskTitles},
	}
}

type labelValue struct {
	label string
	value string
}

// keyValueTable builds the fixed attribute table; every even row carries the
// zebra flag the renderer shades.
func keyValueTable(pairs []labelValue) document.KeyValueTable {
	rows := make([]document.Row, 0, len(pairs))
	for i, pair := range pairs {
		rows = append(rows, document.Row{
			Label: pair.label,
			Value: pair.value,
			Zebra: i%2 == 0,
		})
	}
	return document.KeyValueTable{Rows: rows}
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate)
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
