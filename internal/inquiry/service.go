package inquiry

import (
	"io"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/bond"
	"main/internal/fabric"
	"main/internal/feed"
	"main/internal/model"
	"main/internal/model/enum"
)

var (
	ErrUnknownInquiry = errors.New("inquiry not found")
	ErrNoTransition   = errors.New("no transition rule for inquiry state")
)

// Service runs the quote/accept state machine for customer inquiries,
// keyed by inquiry id.
//
// A new inquiry arrives in Received; the connector immediately quotes it
// and resubmits it, so every inquiry passes through Quoted before
// completing. Processing a Quoted inquiry transitions it to Done and
// fans out; that is the only state downstream consumers ever observe.
type Service struct {
	*fabric.Store[model.Inquiry]
	conn *Connector
}

func NewService() *Service {
	s := &Service{
		Store: fabric.NewStore(func(i model.Inquiry) string { return i.InquiryID }),
	}
	s.conn = &Connector{svc: s}
	return s
}

// Connector returns the service's boundary adapter.
func (s *Service) Connector() *Connector {
	return s.conn
}

// OnMessage advances the state machine for one submitted inquiry. An
// inquiry in a state with no transition rule aborts this propagation
// only; the store is left untouched.
func (s *Service) OnMessage(iq model.Inquiry) error {
	switch iq.State {
	case enum.InquiryReceived:
		s.Put(iq)
		s.conn.Publish(iq)
		return nil
	case enum.InquiryQuoted:
		done := iq.WithState(enum.InquiryDone)
		s.Put(done)
		s.NotifyAdd(done)
		return nil
	default:
		return errors.Wrap(ErrNoTransition, iq.State.String())
	}
}

// SendQuote sets the responded price and re-notifies listeners with the
// inquiry in its current state. It does not itself transition state;
// completion only happens through the connector self-loop.
func (s *Service) SendQuote(inquiryID string, price model.Price) error {
	iq, ok := s.Lookup(inquiryID)
	if !ok {
		return errors.Wrap(ErrUnknownInquiry, inquiryID)
	}
	iq = iq.WithPrice(price)
	s.Put(iq)
	s.NotifyAdd(iq)
	return nil
}

// RejectInquiry moves an inquiry to its terminal Rejected state.
// Rejection is silent to downstream consumers.
func (s *Service) RejectInquiry(inquiryID string) error {
	iq, ok := s.Lookup(inquiryID)
	if !ok {
		return errors.Wrap(ErrUnknownInquiry, inquiryID)
	}
	s.Put(iq.WithState(enum.InquiryRejected))
	return nil
}

// Connector feeds inquiry records into the service and loops freshly
// received inquiries back through it as quoted.
type Connector struct {
	svc *Service
	reg *bond.Registry
}

// WithRegistry sets the product reference table used by Subscribe.
func (c *Connector) WithRegistry(reg *bond.Registry) *Connector {
	c.reg = reg
	return c
}

// Publish quotes a freshly received inquiry and resubmits it.
func (c *Connector) Publish(iq model.Inquiry) {
	if iq.State != enum.InquiryReceived {
		return
	}
	if err := c.svc.OnMessage(iq.WithState(enum.InquiryQuoted)); err != nil {
		logs.Errorf("requote inquiry %s, err: %+v", iq.InquiryID, err)
	}
}

// Subscribe parses inquiry records,
// `inquiryId,productId,side,quantity,priceFraction,state`. State machine
// errors abort only the offending record.
func (c *Connector) Subscribe(r io.Reader) error {
	count := 0
	err := feed.ForEachRecord(r, func(cells []string) error {
		if len(cells) != 6 {
			return errors.Wrap(feed.ErrBadRecord, "want 6 inquiry cells")
		}
		side, err := enum.ParseTradeSide(cells[2])
		if err != nil {
			return err
		}
		quantity, err := feed.ParseQuantity(cells[3])
		if err != nil {
			return err
		}
		price, err := model.ParsePrice(cells[4])
		if err != nil {
			return err
		}
		state, err := enum.ParseInquiryState(cells[5])
		if err != nil {
			return err
		}

		iq := model.Inquiry{
			InquiryID: cells[0],
			Product:   c.reg.Get(cells[1]),
			Side:      side,
			Quantity:  quantity,
			Price:     price,
			State:     state,
		}
		if err := c.svc.OnMessage(iq); err != nil {
			logs.Errorf("inquiry %s dropped, err: %+v", iq.InquiryID, err)
		}
		count++
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "inquiry feed")
	}
	logs.Infof("inquiry feed done, records: %d", count)
	return nil
}
