package commands

import (
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
)

func addTask(m model.Model, c AddTask) (Result, error) {
	if err := m.AddTask(c.Task); err != nil {
		return Result{}, err
	}
	return mutated(DomainSchedule, MessageAddTask, c.Task)
}

func editTask(m model.Model, c EditTask) (Result, error) {
	target, err := resolve(m.FilteredTasks(), c.Index, "task")
	if err != nil {
		return Result{}, err
	}
	edited := c.Edit.Apply(target)
	if err := m.SetTask(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateTaskFilter(nil)
	return mutated(DomainSchedule, MessageEditTask, edited)
}

func deleteTask(m model.Model, c DeleteTask) (Result, error) {
	target, err := resolve(m.FilteredTasks(), c.Index, "task")
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteTask(target); err != nil {
		return Result{}, err
	}
	return mutated(DomainSchedule, MessageDeleteTask, target)
}

func findTasks(m model.Model, c FindTasks) (Result, error) {
	m.UpdateTaskFilter(models.TaskContainsKeywords(c.Keywords))
	return feedback(DomainSchedule, MessageTasksListed, len(m.FilteredTasks()))
}

func listTasks(m model.Model) (Result, error) {
	m.UpdateTaskFilter(nil)
	return feedback(DomainSchedule, MessageListTasks)
}
