package graphql

const subgroupsQuery = `query SubgroupsQuery($id: ID!) {
  subgroup(id: $id) {
    childGroup { edges { node { id name } } }
  }
}`

const threadsQuery = `query ThreadsQuery($id: ID!) {
  subgroup(id: $id) {
    threadSet { edges { node { id title author { id username } } } }
  }
}`

const threadContentQuery = `query ThreadContentQuery($id: ID!) {
  thread(id: $id) {
    id
    title
    content
    author { id username }
    replies { edges { node { content author { id username } } } }
  }
}`

const userQuery = `query UserQuery($id: ID!) {
  user(id: $id) { id username dateJoined bio }
}`

const threadUpdateMutation = `mutation ThreadUpdateMutation($id: ID!, $content: String!) {
  threadUpdate(id: $id, content: $content) { success errors }
}`

const authMutation = `mutation AuthMutation($username: String!, $password: String!) {
  tokenAuth(username: $username, password: $password) { success errors token refreshToken }
}`

const refreshMutation = `mutation RefreshMutation($refreshToken: String!) {
  refreshToken(refreshToken: $refreshToken) { success errors token refreshToken }
}`

const registerMutation = `mutation RegisterMutation($email: String!, $username: String!, $password: String!) {
  register(email: $email, username: $username, password1: $password, password2: $password) { success errors }
}`

const verifyMutation = `mutation VerifyMutation($token: String!) {
  verifyAccount(token: $token) { success errors }
}`
