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

const defaultServicesTableName = "servicos"

type serviceItem struct {
	ID        string  `dynamodbav:"id"`
	Nome      string  `dynamodbav:"nome"`
	Valor     float64 `dynamodbav:"valor"`
	Ativo     bool    `dynamodbav:"ativo"`
	Categoria string  `dynamodbav:"categoria"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context, page, size int) ([]entities.Service, int, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, 0, err
	}

	all := make([]entities.Service, 0, len(raw))
	for _, item := range raw {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		all = append(all, fromServiceItem(it))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	lo, hi := pageWindow(len(all), page, size)
	return all[lo:hi], len(all), nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	b := newUpdateExpr()
	if patch.Nome != nil {
		b.set("nome", &types.AttributeValueMemberS{Value: *patch.Nome})
	}
	if patch.Valor != nil {
		b.set("valor", &types.AttributeValueMemberN{Value: floatToString(*patch.Valor)})
	}
	if patch.Ativo != nil {
		b.set("ativo", &types.AttributeValueMemberBOOL{Value: *patch.Ativo})
	}
	if patch.Categoria != nil {
		b.set("categoria", &types.AttributeValueMemberS{Value: *patch.Categoria})
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
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:        s.ID,
		Nome:      s.Nome,
		Valor:     s.Valor,
		Ativo:     s.Ativo,
		Categoria: s.Categoria,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:        it.ID,
		Nome:      it.Nome,
		Valor:     it.Valor,
		Ativo:     it.Ativo,
		Categoria: it.Categoria,
	}
}
