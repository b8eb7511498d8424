package mappers

import (
	api "github.com/ocrdiff/ocrdiff/api/v1alpha1"
	"github.com/ocrdiff/ocrdiff/internal/comparison"
	"github.com/ocrdiff/ocrdiff/internal/engine"
	"github.com/ocrdiff/ocrdiff/internal/store/model"
)

func TaskToStatusApi(task model.Task) api.TaskStatusResponse {
	return api.TaskStatusResponse{
		TaskId:   task.ID,
		Status:   api.StringToTaskStatus(string(task.Status)),
		Filename: task.Filename,
		Message:  task.Message,
	}
}

func TaskListToApi(tasks []model.Task) api.TaskList {
	summaries := make([]api.TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		summaries = append(summaries, api.TaskSummary{
			TaskId:    task.ID,
			Filename:  task.Filename,
			Status:    api.StringToTaskStatus(string(task.Status)),
			CreatedAt: task.CreatedAt,
		})
	}
	return api.TaskList{Tasks: summaries}
}

func TaskToResultApi(task model.Task) api.ComparisonResponse {
	resp := api.ComparisonResponse{
		TaskId:    task.ID,
		Filename:  task.Filename,
		Status:    api.StringToTaskStatus(string(task.Status)),
		CreatedAt: task.CreatedAt,
	}

	if task.Result == nil {
		return resp
	}

	resp.RawResults = RawResultListToApi(task.Result.RawResults)

	resp.Comparison = make([]api.ComparisonResult, 0, len(task.Result.Comparison))
	for _, res := range task.Result.Comparison {
		resp.Comparison = append(resp.Comparison, ComparisonResultToApi(res))
	}

	resp.Statistics = make([]api.Statistics, 0, len(task.Result.Statistics))
	for _, stat := range task.Result.Statistics {
		resp.Statistics = append(resp.Statistics, api.Statistics{
			EngineName:     stat.EngineName,
			TotalChars:     stat.TotalChars,
			Differences:    stat.Differences,
			Accuracy:       stat.Accuracy,
			ProcessingTime: stat.ProcessingTime,
		})
	}

	resp.MergedView = SegmentListToApi(task.Result.MergedView)

	return resp
}

func RawResultListToApi(results []engine.RawResult) []api.RawResult {
	out := make([]api.RawResult, 0, len(results))
	for _, res := range results {
		raw := api.RawResult{
			EngineName:     res.EngineName,
			Text:           res.Text,
			ProcessingTime: res.ProcessingTime.Seconds(),
		}
		if res.Failed() {
			msg := res.Error
			raw.Error = &msg
		}
		out = append(out, raw)
	}
	return out
}

func ComparisonResultToApi(res comparison.Result) api.ComparisonResult {
	return api.ComparisonResult{
		EngineName:      res.EngineName,
		Segments:        SegmentListToApi(res.Segments),
		TotalCharacters: res.TotalCharacters,
		MatchCount:      res.MatchCount,
		DiffCount:       res.DiffCount,
		AccuracyPercent: res.AccuracyPercent,
	}
}

func SegmentListToApi(segments []comparison.Segment) []api.DiffSegment {
	out := make([]api.DiffSegment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, api.DiffSegment{
			Text:          seg.Text,
			SegmentType:   api.StringToSegmentType(string(seg.Type)),
			StartPosition: seg.Start,
			EndPosition:   seg.End,
			EngineTexts:   seg.EngineTexts,
		})
	}
	return out
}
