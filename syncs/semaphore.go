package syncs

// Semaphore bounds concurrency to the n passed to NewSemaphore. Acquire
// blocks while n holders exist.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}
