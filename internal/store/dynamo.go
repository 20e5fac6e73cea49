package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.opentelemetry.io/otel"

	"github.com/grivetoutdoors/salestrainer/internal/scoring"
	"github.com/grivetoutdoors/salestrainer/internal/session"
)

// reportItem is the DynamoDB record for one session report, single-table
// layout with a GSI ordered by timestamp for newest-first listing.
type reportItem struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	GSI1PK       string `dynamodbav:"GSI1PK"`
	GSI1SK       string `dynamodbav:"GSI1SK"`
	SessionID    string `dynamodbav:"sessionId"`
	Timestamp    string `dynamodbav:"timestamp"`
	EmployeeName string `dynamodbav:"employeeName"`
	Persona      string `dynamodbav:"persona"`
	Introduction int    `dynamodbav:"introduction"`
	Impression   int    `dynamodbav:"impression"`
	Discovery    int    `dynamodbav:"discovery"`
	Solution     int    `dynamodbav:"solution"`
	Upselling    int    `dynamodbav:"upselling"`
	FullSolution int    `dynamodbav:"fullSolution"`
	Objections   int    `dynamodbav:"objections"`
	Closing      int    `dynamodbav:"closing"`
	Email        int    `dynamodbav:"email"`
	Exit         int    `dynamodbav:"exit"`
	TotalScore   int    `dynamodbav:"totalScore"`
	Notes        string `dynamodbav:"notes,omitempty"`
}

// Dynamo persists reports to a DynamoDB table.
type Dynamo struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamo creates a DynamoDB-backed store.
func NewDynamo(client *dynamodb.Client, tableName string) *Dynamo {
	return &Dynamo{client: client, tableName: tableName}
}

// AddReport inserts the report, refusing to overwrite an existing session id.
func (d *Dynamo) AddReport(ctx context.Context, rep session.Report) error {
	ctx, span := otel.Tracer("store").Start(ctx, "dynamo.AddReport")
	defer span.End()

	item := toItem(rep)
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal report item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return fmt.Errorf("put report item: %w", err)
	}
	return nil
}

// ListReports returns every persisted report via GSI1, newest first,
// following pagination to exhaustion.
func (d *Dynamo) ListReports(ctx context.Context) ([]session.Report, error) {
	var reports []session.Report
	var startKey map[string]types.AttributeValue

	for {
		result, err := d.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              &d.tableName,
			IndexName:              aws.String("GSI1"),
			KeyConditionExpression: aws.String("GSI1PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: "REPORTS"},
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("list reports: %w", err)
		}

		var items []reportItem
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal report list: %w", err)
		}
		for _, item := range items {
			reports = append(reports, fromItem(item))
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return reports, nil
}

func toItem(rep session.Report) reportItem {
	return reportItem{
		PK:           "REPORT#" + rep.SessionID,
		SK:           "METADATA",
		GSI1PK:       "REPORTS",
		GSI1SK:       rep.Timestamp + "#" + rep.SessionID,
		SessionID:    rep.SessionID,
		Timestamp:    rep.Timestamp,
		EmployeeName: rep.EmployeeName,
		Persona:      rep.Persona,
		Introduction: rep.Scores[scoring.Introduction],
		Impression:   rep.Scores[scoring.Impression],
		Discovery:    rep.Scores[scoring.Discovery],
		Solution:     rep.Scores[scoring.Solution],
		Upselling:    rep.Scores[scoring.Upselling],
		FullSolution: rep.Scores[scoring.FullSolution],
		Objections:   rep.Scores[scoring.Objections],
		Closing:      rep.Scores[scoring.Closing],
		Email:        rep.Scores[scoring.Email],
		Exit:         rep.Scores[scoring.Exit],
		TotalScore:   rep.Total,
		Notes:        rep.Notes,
	}
}

func fromItem(item reportItem) session.Report {
	return session.Report{
		SessionID:    item.SessionID,
		Timestamp:    item.Timestamp,
		EmployeeName: item.EmployeeName,
		Persona:      item.Persona,
		Total:        item.TotalScore,
		Notes:        item.Notes,
		Scores: scoring.Scorecard{
			scoring.Introduction: item.Introduction,
			scoring.Impression:   item.Impression,
			scoring.Discovery:    item.Discovery,
			scoring.Solution:     item.Solution,
			scoring.Upselling:    item.Upselling,
			scoring.FullSolution: item.FullSolution,
			scoring.Objections:   item.Objections,
			scoring.Closing:      item.Closing,
			scoring.Email:        item.Email,
			scoring.Exit:         item.Exit,
		},
	}
}
