package corpus

import (
	"fmt"
	"sort"

	"github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
)

// archiveRoot is the top-level directory inside the bAbI tasks archive.
const archiveRoot = "tasks_1-20_v1-2"

// taskStems maps bAbI task ids to the file stems used inside the archive,
// e.g. task 1 train split lives at
// tasks_1-20_v1-2/en/qa1_single-supporting-fact_train.txt.
var taskStems = map[int]string{
	1:  "single-supporting-fact",
	2:  "two-supporting-facts",
	3:  "three-supporting-facts",
	4:  "two-arg-relations",
	5:  "three-arg-relations",
	6:  "yes-no-questions",
	7:  "counting",
	8:  "lists-sets",
	9:  "simple-negation",
	10: "indefinite-knowledge",
	11: "basic-coreference",
	12: "conjunction",
	13: "compound-coreference",
	14: "time-reasoning",
	15: "basic-deduction",
	16: "basic-induction",
	17: "positional-reasoning",
	18: "size-reasoning",
	19: "path-finding",
	20: "agents-motivations",
}

// TaskName returns the catalog name of a task.
func TaskName(taskID int) (string, error) {
	stem, ok := taskStems[taskID]
	if !ok {
		return "", errors.NewTaskNotFoundError(taskID, "")
	}
	return stem, nil
}

// TaskFiles returns the archive member paths of the train and test files
// for a task and variant ("en" or "en-10k").
func TaskFiles(taskID int, variant string) (trainPath, testPath string, err error) {
	stem, ok := taskStems[taskID]
	if !ok {
		return "", "", errors.NewTaskNotFoundError(taskID, variant)
	}

	trainPath = fmt.Sprintf("%s/%s/qa%d_%s_train.txt", archiveRoot, variant, taskID, stem)
	testPath = fmt.Sprintf("%s/%s/qa%d_%s_test.txt", archiveRoot, variant, taskID, stem)
	return trainPath, testPath, nil
}

// Tasks returns the full catalog sorted by task id.
func Tasks() []model.TaskInfo {
	tasks := make([]model.TaskInfo, 0, len(taskStems))
	for id, stem := range taskStems {
		tasks = append(tasks, model.TaskInfo{ID: id, Name: stem})
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}
