package repository

import (
	"context"
	"errors"
	"sort"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMechanicsTableName = "mecanicos"

type mechanicItem struct {
	ID        string  `dynamodbav:"id"`
	Nome      string  `dynamodbav:"nome"`
	Sobrenome string  `dynamodbav:"sobrenome"`
	Telefone  string  `dynamodbav:"telefone"`
	Email     *string `dynamodbav:"email,omitempty"`
}

// MechanicDynamoRepository persists Mechanic entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) List(ctx context.Context, page, size int) ([]entities.Mechanic, int, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, 0, err
	}

	all := make([]entities.Mechanic, 0, len(raw))
	for _, item := range raw {
		var it mechanicItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		all = append(all, fromMechanicItem(it))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	lo, hi := pageWindow(len(all), page, size)
	return all[lo:hi], len(all), nil
}

func (r *MechanicDynamoRepository) Update(ctx context.Context, id string, patch entities.MechanicPatch) (entities.Mechanic, error) {
	b := newUpdateExpr()
	if patch.Nome != nil {
		b.set("nome", &types.AttributeValueMemberS{Value: *patch.Nome})
	}
	if patch.Sobrenome != nil {
		b.set("sobrenome", &types.AttributeValueMemberS{Value: *patch.Sobrenome})
	}
	if patch.Telefone != nil {
		b.set("telefone", &types.AttributeValueMemberS{Value: *patch.Telefone})
	}
	if patch.Email != nil {
		b.set("email", &types.AttributeValueMemberS{Value: *patch.Email})
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(b.expr),
		ExpressionAttributeValues: b.vals,
		ExpressionAttributeNames:  mergeNames(b.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Mechanic{}, nil
		}
		return entities.Mechanic{}, err
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{
		ID:        m.ID,
		Nome:      m.Nome,
		Sobrenome: m.Sobrenome,
		Telefone:  m.Telefone,
		Email:     m.Email,
	}
}

func fromMechanicItem(it mechanicItem) entities.Mechanic {
	return entities.Mechanic{
		ID:        it.ID,
		Nome:      it.Nome,
		Sobrenome: it.Sobrenome,
		Telefone:  it.Telefone,
		Email:     it.Email,
	}
}
