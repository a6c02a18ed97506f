package schedulers

import (
	"cpu-scheduler-visualizer/internal/core"
	"cpu-scheduler-visualizer/internal/responses"
	"cpu-scheduler-visualizer/internal/util"
)

// GenerateResponse turns a simulation into the display/JSON response.
// timeQuantum is reported for round robin only.
func GenerateResponse(algorithm Algorithm, timeQuantum int, result core.SimulationResult) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, generateProcessDetails(p))
	}

	gantt := make([]responses.GanttSegment, 0, len(result.Gantt))
	for _, s := range result.Gantt {
		gantt = append(gantt, responses.GanttSegment{ProcessId: s.ProcessId, Start: s.StartTime, End: s.EndTime})
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(details)
	metric := result.Metric
	response := responses.ScheduleResponse{
		Algorithm:             algorithm.String(),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        util.Ratio(metric.UtilizationTime, metric.TotalTime),
		CpuThroughput:         util.Ratio(len(details), metric.TotalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               details,
		Gantt:                 gantt,
	}
	if algorithm == RoundRobin {
		response.TimeQuantum = timeQuantum
	}
	return response
}

// GenerateCompareResponse collects outcomes and names the one with the lowest
// average waiting time.
func GenerateCompareResponse(outcomes []Outcome, timeQuantum int) responses.CompareResponse {
	compare := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(outcomes))}
	var lowest float64
	for i, outcome := range outcomes {
		response := GenerateResponse(outcome.Algorithm, timeQuantum, outcome.Result)
		if i == 0 || response.AverageWaitingTime < lowest {
			lowest = response.AverageWaitingTime
			compare.LowestAverageWaiting = response.Algorithm
		}
		compare.Results = append(compare.Results, response)
	}
	return compare
}

func generateProcessDetails(process core.ProcessRunState) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ProcessId,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnAroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
