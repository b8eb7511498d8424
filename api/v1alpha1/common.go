package v1alpha1

func StringToTaskStatus(s string) TaskStatus {
	switch s {
	case string(TaskStatusPending):
		return TaskStatusPending
	case string(TaskStatusProcessing):
		return TaskStatusProcessing
	case string(TaskStatusCompleted):
		return TaskStatusCompleted
	case string(TaskStatusFailed):
		return TaskStatusFailed
	default:
		return TaskStatusPending
	}
}

func StringToSegmentType(s string) SegmentType {
	switch s {
	case string(SegmentTypeMatch):
		return SegmentTypeMatch
	case string(SegmentTypeMinorDiff):
		return SegmentTypeMinorDiff
	case string(SegmentTypeMajorDiff):
		return SegmentTypeMajorDiff
	default:
		return SegmentTypeMajorDiff
	}
}
