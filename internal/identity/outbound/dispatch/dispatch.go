package dispatch

import (
	"context"
	"fmt"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/instrument"
	"github.com/etradehq/identity/internal/pkg/mail"
	"github.com/etradehq/identity/internal/pkg/sms"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	emailSubject  = "Email Verification"
	emailBodyTmpl = "Your OTP code is : %s"
	smsBodyTmpl   = "Your activation code is %s"
)

// Dispatcher routes a passcode to the channel the destination belongs to,
// email over SMTP or phone over SMS.
type Dispatcher struct {
	mail mail.Mail
	sms  sms.SMS
	ins  instrument.Instrumentation
}

func NewDispatcher(m mail.Mail, s sms.SMS, ins instrument.Instrumentation) *Dispatcher {
	return &Dispatcher{mail: m, sms: s, ins: ins}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ch entity.Channel, destination, code string) error {
	ctx, span := d.ins.Tracer("identity.outbound.dispatch").Start(ctx, "Dispatch")
	defer span.End()

	span.SetAttributes(attribute.String("dispatch.channel", ch.String()))

	var err error
	switch ch {
	case entity.ChannelEmail:
		err = d.mail.Send(ctx, mail.Message{
			To:       []string{destination},
			Subject:  emailSubject,
			TextBody: fmt.Sprintf(emailBodyTmpl, code),
		})
	case entity.ChannelSMS:
		err = d.sms.Send(ctx, sms.Message{
			To:   destination,
			Body: fmt.Sprintf(smsBodyTmpl, code),
		})
	default:
		err = fmt.Errorf("unsupported dispatch channel %q", ch.String())
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
