package shopify

// GraphQL documents for the Storefront API. Field sets are written out per
// query (the decode structs in client.go mirror them).

const productFields = `
      id
      title
      handle
      description
      productType
      tags
      images(first: 10) {
        edges { node { src: url altText } }
      }
      variants(first: 25) {
        edges {
          node {
            id
            title
            availableForSale
            price { amount currencyCode }
            compareAtPrice { amount currencyCode }
            selectedOptions { name value }
          }
        }
      }`

const queryProducts = `
query catalogProducts($first: Int!) {
  products(first: $first) {
    edges {
      node {` + productFields + `
      }
    }
  }
}`

const queryProductByID = `
query productById($id: ID!) {
  node(id: $id) {
    ... on Product {` + productFields + `
    }
  }
}`

const queryCollectionProducts = `
query collectionProducts($id: ID!, $first: Int!) {
  node(id: $id) {
    ... on Collection {
      products(first: $first) {
        edges {
          node {` + productFields + `
          }
        }
      }
    }
  }
}`

const checkoutFields = `
      id
      webUrl
      completedAt
      subtotalPrice { amount currencyCode }
      lineItems(first: 50) {
        edges {
          node {
            id
            title
            quantity
            variant {
              id
              title
              price { amount currencyCode }
              image { src: url }
              selectedOptions { name value }
              product { id }
            }
          }
        }
      }`

const queryCheckout = `
query checkout($id: ID!) {
  node(id: $id) {
    ... on Checkout {` + checkoutFields + `
    }
  }
}`

const mutationCheckoutCreate = `
mutation checkoutCreate {
  checkoutCreate(input: {}) {
    checkout {` + checkoutFields + `
    }
    checkoutUserErrors { message }
  }
}`

const mutationLineItemsAdd = `
mutation checkoutLineItemsAdd($checkoutId: ID!, $lineItems: [CheckoutLineItemInput!]!) {
  checkoutLineItemsAdd(checkoutId: $checkoutId, lineItems: $lineItems) {
    checkout {` + checkoutFields + `
    }
    checkoutUserErrors { message }
  }
}`

const mutationLineItemsRemove = `
mutation checkoutLineItemsRemove($checkoutId: ID!, $lineItemIds: [ID!]!) {
  checkoutLineItemsRemove(checkoutId: $checkoutId, lineItemIds: $lineItemIds) {
    checkout {` + checkoutFields + `
    }
    checkoutUserErrors { message }
  }
}`

const mutationLineItemsUpdate = `
mutation checkoutLineItemsUpdate($checkoutId: ID!, $lineItems: [CheckoutLineItemUpdateInput!]!) {
  checkoutLineItemsUpdate(checkoutId: $checkoutId, lineItems: $lineItems) {
    checkout {` + checkoutFields + `
    }
    checkoutUserErrors { message }
  }
}`
