package results

// JobResult pairs a workflow job name with its outcome
type JobResult struct {
	Name   string
	Status Status
}

// JobResultSet holds job results keyed by job name,
// preserving the order the jobs appeared in the input
type JobResultSet struct {
	jobs  []JobResult
	index map[string]int
}

func NewJobResultSet() *JobResultSet {
	return &JobResultSet{
		jobs:  []JobResult{},
		index: map[string]int{},
	}
}

// Add records a job result. A duplicate name overwrites the earlier
// status but keeps the job's original position (last-write-wins).
func (s *JobResultSet) Add(name string, status Status) {
	if i, ok := s.index[name]; ok {
		s.jobs[i].Status = status
		return
	}
	s.index[name] = len(s.jobs)
	s.jobs = append(s.jobs, JobResult{Name: name, Status: status})
}

// Jobs returns the results in input order
func (s *JobResultSet) Jobs() []JobResult {
	return s.jobs
}

func (s *JobResultSet) Len() int {
	return len(s.jobs)
}

// Overall reduces the set to a single workflow status.
// Failure outranks everything, cancellation outranks skipping,
// and only an all-success set is a success.
func (s *JobResultSet) Overall() Status {
	for _, precedence := range []Status{Failure, Cancelled, Skipped} {
		for _, job := range s.jobs {
			if job.Status == precedence {
				return precedence
			}
		}
	}
	return Success
}
