package systems

import (
	"container/heap"
)

// TaskKind 延迟任务类型
type TaskKind int

const (
	// TaskRespawn 收获后的补种
	TaskRespawn TaskKind = iota
	// TaskRevealCue 揭示音效
	TaskRevealCue
	// TaskHideToast 隐藏提示消息
	TaskHideToast
)

// String 返回任务类型名称（日志使用）
func (k TaskKind) String() string {
	switch k {
	case TaskRespawn:
		return "respawn"
	case TaskRevealCue:
		return "reveal-cue"
	case TaskHideToast:
		return "hide-toast"
	default:
		return "unknown"
	}
}

// task 一个待执行的延迟任务
type task struct {
	kind   TaskKind
	fireAt float64 // 触发时间（毫秒）
	seq    uint64  // 同一时间按加入顺序执行
	run    func()
}

// taskQueue 按 (fireAt, seq) 排序的最小堆
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].fireAt != q[j].fireAt {
		return q[i].fireAt < q[j].fireAt
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(*task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// TaskScheduler 延迟任务队列
//
// 所有任务都在游戏线程上由 RunDue 执行，不使用计时器 goroutine，
// 因此执行顺序与取消都是确定的。
type TaskScheduler struct {
	queue   taskQueue
	nextSeq uint64
}

// NewTaskScheduler 创建空的任务队列
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{}
}

// After 在 now+delayMs 时执行 run
func (s *TaskScheduler) After(now, delayMs float64, kind TaskKind, run func()) {
	s.nextSeq++
	heap.Push(&s.queue, &task{
		kind:   kind,
		fireAt: now + delayMs,
		seq:    s.nextSeq,
		run:    run,
	})
}

// RunDue 执行所有 fireAt <= now 的任务，返回执行数量
// 执行过程中新加入的任务留到下一次调用
func (s *TaskScheduler) RunDue(now float64) int {
	limit := s.nextSeq
	var deferred []*task
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].fireAt <= now {
		t := heap.Pop(&s.queue).(*task)
		if t.seq > limit {
			deferred = append(deferred, t)
			continue
		}
		t.run()
		ran++
	}
	for _, t := range deferred {
		heap.Push(&s.queue, t)
	}
	return ran
}

// CancelKind 取消指定类型的全部任务，返回取消数量
func (s *TaskScheduler) CancelKind(kind TaskKind) int {
	kept := s.queue[:0]
	cancelled := 0
	for _, t := range s.queue {
		if t.kind == kind {
			cancelled++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = kept
	heap.Init(&s.queue)
	return cancelled
}

// Pending 返回指定类型的待执行任务数量
func (s *TaskScheduler) Pending(kind TaskKind) int {
	n := 0
	for _, t := range s.queue {
		if t.kind == kind {
			n++
		}
	}
	return n
}

// Len 返回全部待执行任务数量
func (s *TaskScheduler) Len() int {
	return s.queue.Len()
}
