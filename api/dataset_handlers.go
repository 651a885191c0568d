package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/internal/engine"
	internalerrors "github.com/gcbaptista/go-babi-prep/internal/errors"
	"github.com/gcbaptista/go-babi-prep/model"
	"github.com/gcbaptista/go-babi-prep/services"
	"github.com/gcbaptista/go-babi-prep/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CreateDatasetHandler handles the request to prepare a new dataset.
// Request Body: config.DatasetSettings
func (api *API) CreateDatasetHandler(c *gin.Context) {
	var settings config.DatasetSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	settings.ApplyDefaults()
	if result := ValidateDatasetSettings(&settings); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	// Prepare asynchronously when the engine supports it
	var jobID string
	var err error
	if concreteEngine, ok := api.engine.(*engine.Engine); ok {
		jobID, err = concreteEngine.PrepareDatasetAsync(settings)
	} else {
		err = api.engine.PrepareDataset(settings)
	}

	if err != nil {
		switch {
		case errors.Is(err, internalerrors.ErrDatasetAlreadyExists):
			SendDatasetExistsError(c, settings.Name)
		case errors.Is(err, internalerrors.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		default:
			SendPreparationError(c, settings.Name, err)
		}
		return
	}

	if jobID != "" {
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "Dataset preparation started for '" + settings.Name + "'",
			"job_id":  jobID,
		})
	} else {
		c.JSON(http.StatusCreated, gin.H{"message": "Dataset '" + settings.Name + "' prepared successfully"})
	}
}

// ListDatasetsHandler returns the names of all prepared datasets.
func (api *API) ListDatasetsHandler(c *gin.Context) {
	names := api.engine.ListDatasets()
	sort.Strings(names)
	c.JSON(http.StatusOK, gin.H{"datasets": names, "count": len(names)})
}

// GetDatasetHandler returns the settings and shape summary of a dataset.
func (api *API) GetDatasetHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	if result := ValidateDatasetName(datasetName); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	accessor, err := api.engine.GetDataset(datasetName)
	if err != nil {
		SendDatasetNotFoundError(c, datasetName)
		return
	}

	train, _ := accessor.Examples(store.SplitTrain)
	test, _ := accessor.Examples(store.SplitTest)
	storyWidth, questionWidth := accessor.Widths()

	c.JSON(http.StatusOK, gin.H{
		"settings":        accessor.Settings(),
		"train_examples":  len(train),
		"test_examples":   len(test),
		"vocabulary_size": accessor.Vocabulary().Size(),
		"story_width":     storyWidth,
		"question_width":  questionWidth,
	})
}

// DeleteDatasetHandler removes a prepared dataset.
func (api *API) DeleteDatasetHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	if result := ValidateDatasetName(datasetName); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	var jobID string
	var err error
	if concreteEngine, ok := api.engine.(*engine.Engine); ok {
		jobID, err = concreteEngine.DeleteDatasetAsync(datasetName)
	} else {
		err = api.engine.DeleteDataset(datasetName)
	}

	if err != nil {
		if errors.Is(err, internalerrors.ErrDatasetNotFound) {
			SendDatasetNotFoundError(c, datasetName)
		} else {
			SendInternalError(c, "dataset deletion", err)
		}
		return
	}

	if jobID != "" {
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "Dataset deletion started for '" + datasetName + "'",
			"job_id":  jobID,
		})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Dataset '" + datasetName + "' deleted successfully"})
	}
}

// GetVocabularyHandler returns the token-id mapping of a dataset.
func (api *API) GetVocabularyHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	accessor, err := api.engine.GetDataset(datasetName)
	if err != nil {
		SendDatasetNotFoundError(c, datasetName)
		return
	}

	voc := accessor.Vocabulary()
	voc.Mu.RLock()
	view := services.VocabularyView{
		Size:   len(voc.Tokens),
		Tokens: voc.Tokens,
		Index:  voc.Index,
	}
	voc.Mu.RUnlock()

	c.JSON(http.StatusOK, view)
}

// GetExamplesHandler lists the parsed examples of one split with
// pagination and an optional token filter.
// Query params: split (train|test, default train), token, page, page_size.
func (api *API) GetExamplesHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	accessor, err := api.engine.GetDataset(datasetName)
	if err != nil {
		SendDatasetNotFoundError(c, datasetName)
		return
	}

	split := c.DefaultQuery("split", store.SplitTrain)
	if result := ValidateSplitName(split); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	var examples []model.Example
	if token := c.Query("token"); token != "" {
		examples, err = accessor.ExamplesWithToken(split, token)
	} else {
		examples, err = accessor.Examples(split)
	}
	if err != nil {
		SendInternalError(c, "example listing", err)
		return
	}

	page, pageSize := parsePagination(c)
	start := (page - 1) * pageSize
	if start > len(examples) {
		start = len(examples)
	}
	end := start + pageSize
	if end > len(examples) {
		end = len(examples)
	}

	c.JSON(http.StatusOK, services.ExamplePage{
		Examples: examples[start:end],
		Total:    len(examples),
		Page:     page,
		PageSize: pageSize,
		Split:    split,
	})
}

// GetTensorsHandler returns the vectorized arrays of one split.
// Query params: split (train|test, default train).
func (api *API) GetTensorsHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	accessor, err := api.engine.GetDataset(datasetName)
	if err != nil {
		SendDatasetNotFoundError(c, datasetName)
		return
	}

	split := c.DefaultQuery("split", store.SplitTrain)
	if result := ValidateSplitName(split); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	tensors, err := accessor.Tensors(split)
	if err != nil {
		SendInternalError(c, "tensor retrieval", err)
		return
	}

	storyWidth, questionWidth := accessor.Widths()
	c.JSON(http.StatusOK, gin.H{
		"split":          split,
		"count":          tensors.Len(),
		"story_width":    storyWidth,
		"question_width": questionWidth,
		"tensors":        tensors,
	})
}

// GetDatasetStatsHandler returns corpus statistics for a dataset.
func (api *API) GetDatasetStatsHandler(c *gin.Context) {
	datasetName := c.Param("datasetName")
	datasetStats, err := api.stats.DatasetStats(datasetName)
	if err != nil {
		if errors.Is(err, internalerrors.ErrDatasetNotFound) {
			SendDatasetNotFoundError(c, datasetName)
		} else {
			SendInternalError(c, "statistics computation", err)
		}
		return
	}

	c.JSON(http.StatusOK, datasetStats)
}

// parsePagination reads page/page_size query parameters with defaults.
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
