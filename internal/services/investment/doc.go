/*
Package investment handles share purchases and the investor's portfolio reads.

A purchase runs these checks against the property before anything is written:
- the property must exist
- shares must be a positive integer
- shares must not exceed the property's available shares
- shares × sharePrice must reach the property's minimum investment

The investment row and the share decrement are written in one transaction.
The decrement is conditional on enough shares remaining, so two concurrent
buyers cannot oversell a property; the loser gets ErrInsufficientShares and
its insert is rolled back.

Usage:

	svc := investment.NewService(investments, properties, logger, metrics)

	view, err := svc.Create(ctx, investment.CreateInput{
	    UserID:     userID,
	    PropertyID: propertyID,
	    Shares:     2,
	})

	page, err := svc.ListByUser(ctx, userID, 1, 10)

Metrics:

The service reports through MetricsCollector:
- creation outcomes and durations
- invested amount and shares sold
*/
package investment
