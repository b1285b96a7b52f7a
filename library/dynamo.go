package library

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/mid2text/config"
	"github.com/pkg/errors"
)

// Dynamo is a Store on a DynamoDB table keyed by the string attribute PK.
type Dynamo struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamo(cfg config.Library) (*Dynamo, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewDynamoWithClient(dynamodb.New(sess), cfg.Table), nil
}

func NewDynamoWithClient(client dynamodbiface.DynamoDBAPI, table string) *Dynamo {
	return &Dynamo{client: client, table: table}
}

func (d *Dynamo) key(name string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(name)},
	}
}

func toItem(e Entry) map[string]*dynamodb.AttributeValue {
	item := map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(e.Name)},
		"ID":        {S: aws.String(e.ID)},
		"Macro":     {S: aws.String(e.Macro)},
		"CreatedAt": {N: aws.String(strconv.FormatInt(e.CreatedAt.UnixNano(), 10))},
	}
	// DynamoDB rejects empty string sets
	if len(e.Instruments) > 0 {
		item["Instruments"] = &dynamodb.AttributeValue{SS: aws.StringSlice(e.Instruments)}
	}
	return item
}

func fromItem(v map[string]*dynamodb.AttributeValue) Entry {
	var e Entry
	if a, ok := v["PK"]; ok && a.S != nil {
		e.Name = *a.S
	}
	if a, ok := v["ID"]; ok && a.S != nil {
		e.ID = *a.S
	}
	if a, ok := v["Macro"]; ok && a.S != nil {
		e.Macro = *a.S
	}
	if a, ok := v["Instruments"]; ok {
		e.Instruments = aws.StringValueSlice(a.SS)
	}
	if a, ok := v["CreatedAt"]; ok && a.N != nil {
		nanos, _ := strconv.ParseInt(*a.N, 10, 64)
		e.CreatedAt = time.Unix(0, nanos).UTC()
	}
	return e
}

func (d *Dynamo) Put(ctx context.Context, e Entry) error {
	if err := validateName(e.Name); err != nil {
		return err
	}
	_, err := d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      toItem(e),
	})
	return errors.Wrap(err, "error from DynamoDB")
}

func (d *Dynamo) Get(ctx context.Context, name string) (Entry, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(name),
	})
	if err != nil {
		return Entry{}, errors.Wrap(err, "error from DynamoDB")
	}
	if len(out.Item) == 0 {
		return Entry{}, ErrNotFound
	}
	return fromItem(out.Item), nil
}

func (d *Dynamo) List(ctx context.Context) ([]Entry, error) {
	var res []Entry
	input := &dynamodb.ScanInput{TableName: aws.String(d.table)}
	err := d.client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		for _, v := range page.Items {
			res = append(res, fromItem(v))
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}
	sortByName(res)
	return res, nil
}

func (d *Dynamo) Delete(ctx context.Context, name string) error {
	_, err := d.client.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(name),
	})
	return errors.Wrap(err, "error from DynamoDB")
}

func (d *Dynamo) Close() error {
	return nil
}
