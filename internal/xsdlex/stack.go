package xsdlex

import "container/list"

// stack is a LIFO collection used by the lexer to track the chain of
// currently-open elements while it walks an XSD document one token at a
// time.
type stack struct {
	list *list.List
}

func newStack() *stack {
	return &stack{list: list.New()}
}

func (s *stack) push(value interface{}) {
	s.list.PushBack(value)
}

func (s *stack) pop() interface{} {
	e := s.list.Back()
	if e == nil {
		return nil
	}
	s.list.Remove(e)
	return e.Value
}

func (s *stack) peek() interface{} {
	e := s.list.Back()
	if e == nil {
		return nil
	}
	return e.Value
}

func (s *stack) empty() bool {
	return s.list.Len() == 0
}
