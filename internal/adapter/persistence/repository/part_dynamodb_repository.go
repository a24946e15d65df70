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

const defaultPartsTableName = "pecas"

type partItem struct {
	ID     string  `dynamodbav:"id"`
	Nome   string  `dynamodbav:"nome"`
	Marca  string  `dynamodbav:"marca"`
	Modelo string  `dynamodbav:"modelo"`
	Valor  float64 `dynamodbav:"valor"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
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
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context, page, size int) ([]entities.Part, int, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, 0, err
	}

	all := make([]entities.Part, 0, len(raw))
	for _, item := range raw {
		var it partItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		all = append(all, fromPartItem(it))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	lo, hi := pageWindow(len(all), page, size)
	return all[lo:hi], len(all), nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, id string, patch entities.PartPatch) (entities.Part, error) {
	b := newUpdateExpr()
	if patch.Nome != nil {
		b.set("nome", &types.AttributeValueMemberS{Value: *patch.Nome})
	}
	if patch.Marca != nil {
		b.set("marca", &types.AttributeValueMemberS{Value: *patch.Marca})
	}
	if patch.Modelo != nil {
		b.set("modelo", &types.AttributeValueMemberS{Value: *patch.Modelo})
	}
	if patch.Valor != nil {
		b.set("valor", &types.AttributeValueMemberN{Value: floatToString(*patch.Valor)})
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
			return entities.Part{}, nil
		}
		return entities.Part{}, err
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:     p.ID,
		Nome:   p.Nome,
		Marca:  p.Marca,
		Modelo: p.Modelo,
		Valor:  p.Valor,
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:     it.ID,
		Nome:   it.Nome,
		Marca:  it.Marca,
		Modelo: it.Modelo,
		Valor:  it.Valor,
	}
}
