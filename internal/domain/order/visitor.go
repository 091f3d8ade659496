package order

// Visitor dispatches on the concrete order type.
type Visitor interface {
	VisitCake(c *Cake)
	VisitSweet(s *Sweet)
	VisitWedding(w *Wedding)
}

// VisitorFuncs adapts plain functions to Visitor. Nil entries are skipped.
type VisitorFuncs struct {
	Cake    func(*Cake)
	Sweet   func(*Sweet)
	Wedding func(*Wedding)
}

func (f VisitorFuncs) VisitCake(c *Cake) {
	if f.Cake != nil {
		f.Cake(c)
	}
}

func (f VisitorFuncs) VisitSweet(s *Sweet) {
	if f.Sweet != nil {
		f.Sweet(s)
	}
}

func (f VisitorFuncs) VisitWedding(w *Wedding) {
	if f.Wedding != nil {
		f.Wedding(w)
	}
}

// Walk applies v to every order in order.
func Walk(orders []Order, v Visitor) {
	for _, o := range orders {
		o.Accept(v)
	}
}
