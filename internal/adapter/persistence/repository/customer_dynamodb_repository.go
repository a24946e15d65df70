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

const defaultCustomersTableName = "clientes"

type enderecoItem struct {
	Cidade     string `dynamodbav:"cidade"`
	Bairro     string `dynamodbav:"bairro"`
	Logradouro string `dynamodbav:"logradouro"`
}

type customerItem struct {
	ID        string       `dynamodbav:"id"`
	Nome      string       `dynamodbav:"nome"`
	Sobrenome string       `dynamodbav:"sobrenome"`
	Endereco  enderecoItem `dynamodbav:"endereco"`
	Telefone  string       `dynamodbav:"telefone"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context, page, size int) ([]entities.Customer, int, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, 0, err
	}

	all := make([]entities.Customer, 0, len(raw))
	for _, item := range raw {
		var it customerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		all = append(all, fromCustomerItem(it))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	lo, hi := pageWindow(len(all), page, size)
	return all[lo:hi], len(all), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
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
	if patch.Endereco != nil {
		av, err := attributevalue.Marshal(enderecoItem{
			Cidade:     patch.Endereco.Cidade,
			Bairro:     patch.Endereco.Bairro,
			Logradouro: patch.Endereco.Logradouro,
		})
		if err != nil {
			return entities.Customer{}, err
		}
		b.set("endereco", av)
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
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Nome:      c.Nome,
		Sobrenome: c.Sobrenome,
		Endereco: enderecoItem{
			Cidade:     c.Endereco.Cidade,
			Bairro:     c.Endereco.Bairro,
			Logradouro: c.Endereco.Logradouro,
		},
		Telefone: c.Telefone,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Nome:      it.Nome,
		Sobrenome: it.Sobrenome,
		Endereco: entities.Endereco{
			Cidade:     it.Endereco.Cidade,
			Bairro:     it.Endereco.Bairro,
			Logradouro: it.Endereco.Logradouro,
		},
		Telefone: it.Telefone,
	}
}
