package runs

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"github.com/dariuszzbyrad/jgenetics/entities"
)

type dynamo struct {
	svc   dynamodbiface.DynamoDBAPI
	table string
}

// New instanciates a dynamo session to store and query runs
func New(sess *session.Session, table string) Storage {
	return NewWithClient(dynamodb.New(sess), table)
}

// NewWithClient uses an existing dynamo client
func NewWithClient(svc dynamodbiface.DynamoDBAPI, table string) Storage {
	if table == "" {
		table = TableName
	}

	return &dynamo{
		svc:   svc,
		table: table,
	}
}

const (
	// TableName is the default table used to store the data
	TableName = "jgenetics"
	// Partition groups the run items of the table
	Partition = "runs"
)

func (d *dynamo) key(runID string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"partition": {
			S: aws.String(Partition),
		},
		"key": {
			S: aws.String(runID),
		},
	}
}

func (d *dynamo) StoreRun(r *entities.Run) error {
	if err := validate(r); err != nil {
		return err
	}
	if stored, err := d.GetRun(r.ID); stored != nil || err != ErrorInvalidRun && err != nil {
		switch {
		case stored != nil:
			return ErrorRunAlreadyExists
		default:
			return err
		}
	}

	if r.CreationTime == "" {
		r.CreationTime = time.Now().UTC().Format(time.RFC3339)
	}
	item, err := dynamodbattribute.MarshalMap(r)
	if err != nil {
		return err
	}
	for k, v := range d.key(r.ID) {
		item[k] = v
	}
	item["sort"] = &dynamodb.AttributeValue{S: aws.String(r.CreationTime)}

	_, err = d.svc.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})

	return err
}

func (d *dynamo) GetRun(runID string) (*entities.Run, error) {
	if runID == "" {
		return nil, ErrorMissingRunID
	}
	r := &entities.Run{}

	out, err := d.svc.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(runID),
	})
	if err != nil {
		return nil, err
	}
	err = dynamodbattribute.UnmarshalMap(out.Item, r)
	if err != nil {
		return nil, err
	}

	if r.ID == "" {
		return nil, ErrorInvalidRun
	}

	return r, nil
}
